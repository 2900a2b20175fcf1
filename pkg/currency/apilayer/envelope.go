package apilayer

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

const (
	successField = "success"
	errorField   = "error"
)

// errorBody is the shape of a success=false response.
type errorBody struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

// Decode interprets an apilayer response body. The success flag is probed
// first; a false flag yields a *ServerError built from the error body, and a
// true flag decodes the full body into v.
func Decode(body []byte, v interface{}) error {
	if !gjson.ValidBytes(body) {
		return ParseErrorf("response body is not valid json")
	}

	success := gjson.GetBytes(body, successField)
	switch success.Type {
	case gjson.True:
	case gjson.False:
		return decodeError(body)
	default:
		return ParseErrorf("response body has no boolean %q field", successField)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return ParseError(err, "failed to decode response body")
	}
	return nil
}

func decodeError(body []byte) error {
	raw := gjson.GetBytes(body, errorField)
	if !raw.IsObject() {
		return ParseErrorf("unsuccessful response has no %q object", errorField)
	}

	var decoded errorBody
	if err := json.Unmarshal([]byte(raw.Raw), &decoded); err != nil {
		return ParseError(err, "failed to decode error body")
	}

	return &ServerError{
		Code: decoded.Code,
		Type: decoded.Type,
		Info: decoded.Info,
	}
}
