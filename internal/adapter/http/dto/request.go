package dto

import (
	"encoding/json"
	"io"
)

// RawTransaction is the untyped inbound write payload. The API accepts both
// the flat transaction shape and the {transaction, entries} envelope some
// clients send, so the body is decoded as-is and normalized by the assembler.
type RawTransaction map[string]any

// DecodeRawTransaction decodes a request body into a RawTransaction.
func DecodeRawTransaction(r io.Reader) (RawTransaction, error) {
	var raw RawTransaction
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
