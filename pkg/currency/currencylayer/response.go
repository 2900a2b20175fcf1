package currencylayer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/code-payments/currencylayer/pkg/currency"
	"github.com/code-payments/currencylayer/pkg/currency/apilayer"
)

const (
	pairKeyLength = 6

	// The free tier always quotes against USD
	defaultSource = currency.USD
)

// response is the success shape of the live and historical endpoints
type response struct {
	Success    bool                       `json:"success"`
	Historical bool                       `json:"historical"`
	Date       string                     `json:"date"`
	Timestamp  int64                      `json:"timestamp"`
	Source     currency.Code              `json:"source"`
	Quotes     map[string]decimal.Decimal `json:"quotes"`
}

func (r *response) source() currency.Code {
	if len(r.Source) == 0 {
		return defaultSource
	}
	return r.Source
}

func (r *response) timestamp() (time.Time, error) {
	if r.Timestamp <= 0 {
		return time.Time{}, apilayer.ParseErrorf("response has no timestamp")
	}
	return time.Unix(r.Timestamp, 0).UTC(), nil
}

// quote returns the multiplier from the response source into code
func (r *response) quote(code currency.Code) (decimal.Decimal, bool) {
	value, ok := r.Quotes[string(r.source())+string(code)]
	return value, ok
}

// pairs splits every quote key into its source and target currency, in a
// stable order.
func (r *response) pairs() ([]pair, error) {
	keys := make([]string, 0, len(r.Quotes))
	for key := range r.Quotes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	source := r.source()
	res := make([]pair, 0, len(keys))
	for _, key := range keys {
		if len(key) != pairKeyLength {
			return nil, apilayer.ParseErrorf("malformed quote key %q", key)
		}

		p := pair{
			from: currency.Code(key[:3]),
			to:   currency.Code(key[3:]),
			rate: r.Quotes[key],
		}
		if p.from != source {
			return nil, apilayer.ParseErrorf("quote %q is not relative to source %s", key, source)
		}
		res = append(res, p)
	}
	return res, nil
}

type pair struct {
	from currency.Code
	to   currency.Code
	rate decimal.Decimal
}
