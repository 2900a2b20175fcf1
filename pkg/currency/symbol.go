package currency

// symbolByCode holds the display symbol for currencies that have one. Codes
// missing here display with the code itself.
var symbolByCode = map[Code]string{
	AED: "د.إ",
	AFN: "؋",
	ALL: "Lek",
	ANG: "ƒ",
	AOA: "Kz",
	ARS: "$",
	AUD: "$",
	AWG: "ƒ",
	AZN: "₼",
	BAM: "KM",
	BDT: "৳",
	BBD: "$",
	BGN: "лв",
	BMD: "$",
	BND: "$",
	BOB: "$b",
	BRL: "R$",
	BSD: "$",
	BWP: "P",
	BYN: "Br",
	BZD: "BZ$",
	CAD: "$",
	CHF: "CHF",
	CLP: "$",
	CNY: "¥",
	COP: "$",
	CRC: "₡",
	CUC: "$",
	CUP: "₱",
	CZK: "Kč",
	DKK: "kr",
	DOP: "RD$",
	EGP: "£",
	ERN: "£",
	EUR: "€",
	FJD: "$",
	FKP: "£",
	GBP: "£",
	GEL: "₾",
	GGP: "£",
	GHS: "¢",
	GIP: "£",
	GNF: "FG",
	GTQ: "Q",
	GYD: "$",
	HKD: "$",
	HNL: "L",
	HRK: "kn",
	HUF: "Ft",
	IDR: "Rp",
	ILS: "₪",
	IMP: "£",
	INR: "₹",
	IRR: "﷼",
	ISK: "kr",
	JEP: "£",
	JMD: "J$",
	JPY: "¥",
	KGS: "лв",
	KHR: "៛",
	KMF: "CF",
	KPW: "₩",
	KRW: "₩",
	KYD: "$",
	KZT: "лв",
	LAK: "₭",
	LBP: "£",
	LKR: "₨",
	LRD: "$",
	LTL: "Lt",
	LVL: "Ls",
	MGA: "Ar",
	MKD: "ден",
	MMK: "K",
	MNT: "₮",
	MUR: "₨",
	MXN: "$",
	MYR: "RM",
	MZN: "MT",
	NAD: "$",
	NGN: "₦",
	NIO: "C$",
	NOK: "kr",
	NPR: "₨",
	NZD: "$",
	OMR: "﷼",
	PAB: "B/.",
	PEN: "S/.",
	PHP: "₱",
	PKR: "₨",
	PLN: "zł",
	PYG: "Gs",
	QAR: "﷼",
	RON: "lei",
	RSD: "Дин.",
	RUB: "₽",
	RWF: "RF",
	SAR: "﷼",
	SBD: "$",
	SCR: "₨",
	SEK: "kr",
	SGD: "$",
	SHP: "£",
	SOS: "S",
	SRD: "$",
	SSP: "£",
	STD: "Db",
	SVC: "$",
	SYP: "£",
	THB: "฿",
	TOP: "T$",
	TRY: "₺",
	TTD: "TT$",
	TWD: "NT$",
	UAH: "₴",
	USD: "$",
	UYU: "$U",
	UZS: "лв",
	VND: "₫",
	XCD: "$",
	YER: "﷼",
	ZAR: "R",
	ZMW: "ZK",
}

// GetSymbol returns the display symbol for a currency, falling back to the
// code when no symbol is known.
func GetSymbol(code Code) string {
	if symbol, ok := symbolByCode[code]; ok {
		return symbol
	}
	return string(code)
}
