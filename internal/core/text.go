package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Text is a catalog scalar. The API emits some fields as strings and some
// as numbers; both are kept verbatim. null decodes to the empty string.
type Text string

func (t Text) String() string {
	return string(t)
}

func (t Text) Empty() bool {
	return t == ""
}

// Truthy reports whether the value counts as set. Empty text, false and
// any numeric zero ("0", 0.0) do not.
func (t Text) Truthy() bool {
	s := strings.TrimSpace(string(t))
	if s == "" || s == "false" {
		return false
	}
	if d, err := decimal.NewFromString(s); err == nil && d.IsZero() {
		return false
	}
	return true
}

func (t *Text) UnmarshalJSON(data []byte) error {
	value, err := scalarText(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*t = Text(value)
	return nil
}

type ExportPrice struct {
	Currency string
	Value    Text
}

// ExportPrices keeps the key order of the API object so that rendering is
// deterministic.
type ExportPrices []ExportPrice

func (e *ExportPrices) UnmarshalJSON(data []byte) error {
	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		*e = nil
		return nil
	}
	if !result.IsObject() {
		return fmt.Errorf("%w: exportPrices must be an object, got %s", ErrInvalidField, result.Raw)
	}

	prices := make(ExportPrices, 0)
	var decodeErr error
	result.ForEach(func(key, value gjson.Result) bool {
		text, err := scalarText(value)
		if err != nil {
			decodeErr = fmt.Errorf("exportPrices.%s: %w", key.String(), err)
			return false
		}
		prices = append(prices, ExportPrice{Currency: key.String(), Value: Text(text)})
		return true
	})
	if decodeErr != nil {
		return decodeErr
	}

	*e = prices
	return nil
}

// NonEmpty returns the entries whose value is truthy.
func (e ExportPrices) NonEmpty() ExportPrices {
	var out ExportPrices
	for _, price := range e {
		if price.Value.Truthy() {
			out = append(out, price)
		}
	}
	return out
}

func scalarText(result gjson.Result) (string, error) {
	switch result.Type {
	case gjson.Null:
		return "", nil
	case gjson.String:
		return result.Str, nil
	case gjson.Number, gjson.True, gjson.False:
		return result.Raw, nil
	default:
		return "", fmt.Errorf("%w: expected a scalar, got %s", ErrInvalidField, result.Raw)
	}
}
