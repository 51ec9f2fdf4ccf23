package handler

import (
	"encoding/json"
	"errors"

	"github.com/lojaviva/commerce-system/internal/core/ports"
)

var errNotANumber = errors.New("expected a number literal")

// numberLiteral carries a numeric JSON token through binding unparsed, so
// the validator can tell an integer literal from a decimal one: the price
// rule rejects 10 but accepts 10.0. Unlike json.Number it refuses quoted
// values; "9.5" is a bind failure, not a price.
type numberLiteral json.Number

func (n *numberLiteral) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) == 0 || data[0] == '"' {
		return errNotANumber
	}
	*n = numberLiteral(data)
	return nil
}

// orderRequest is the registration/update payload. A client-supplied
// total_value has no field to land in and is discarded.
type orderRequest struct {
	UserID          int64         `json:"user_id"`
	ItemDescription string        `json:"item_description"`
	ItemQuantity    numberLiteral `json:"item_quantity"`
	ItemPrice       numberLiteral `json:"item_price"`
}

func (r orderRequest) input() ports.OrderInput {
	return ports.OrderInput{
		UserID:          r.UserID,
		ItemDescription: r.ItemDescription,
		ItemQuantity:    json.Number(r.ItemQuantity),
		ItemPrice:       json.Number(r.ItemPrice),
	}
}
