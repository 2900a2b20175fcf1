package currency

// Currency describes a currency as issued by a Registry.
type Currency struct {
	Code     Code
	Decimals int
	Symbol   string
}

func (c Currency) String() string {
	return string(c.Code)
}

// Registry resolves currency codes into currency descriptors.
type Registry interface {
	Lookup(code Code) (Currency, bool)
}

type registry struct {
	currencies map[Code]Currency
}

// NewISORegistry returns a Registry containing every ISO 4217 currency known
// to this package.
func NewISORegistry() Registry {
	currencies := make([]Currency, 0, len(AllCodes))
	for _, code := range AllCodes {
		currencies = append(currencies, Currency{
			Code:     code,
			Decimals: GetDecimals(code),
			Symbol:   GetSymbol(code),
		})
	}
	return NewRegistry(currencies...)
}

// NewRegistry returns a Registry restricted to the provided currencies.
func NewRegistry(currencies ...Currency) Registry {
	r := &registry{
		currencies: make(map[Code]Currency, len(currencies)),
	}
	for _, c := range currencies {
		r.currencies[c.Code] = c
	}
	return r
}

// Lookup implements Registry.Lookup
func (r *registry) Lookup(code Code) (Currency, bool) {
	c, ok := r.currencies[code]
	return c, ok
}

// MustLookup resolves a code or panics. Intended for tests and static setup.
func MustLookup(r Registry, code Code) Currency {
	c, ok := r.Lookup(code)
	if !ok {
		panic(&InvalidCurrencyError{Symbol: code})
	}
	return c
}

// Resolve looks up every code, failing with an InvalidCurrencyError naming the
// first unknown one.
func Resolve(r Registry, codes ...Code) ([]Currency, error) {
	res := make([]Currency, 0, len(codes))
	for _, code := range codes {
		c, ok := r.Lookup(code)
		if !ok {
			return nil, &InvalidCurrencyError{Symbol: code}
		}
		res = append(res, c)
	}
	return res, nil
}
