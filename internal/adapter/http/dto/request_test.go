package dto

import (
	"strings"
	"testing"
)

func TestDecodeRawTransaction(t *testing.T) {
	body := `{"description":"sale","entries":[{"accountId":"cash","debitAmount":100}]}`

	raw, err := DecodeRawTransaction(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if raw["description"] != "sale" {
		t.Fatalf("unexpected decoded payload: %+v", raw)
	}
	if _, ok := raw["entries"].([]any); !ok {
		t.Fatalf("entries not decoded as list: %+v", raw["entries"])
	}
}

func TestDecodeRawTransactionEnvelope(t *testing.T) {
	body := `{"transaction":{"description":"sale"},"entries":[]}`

	raw, err := DecodeRawTransaction(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	// The envelope is kept intact for the assembler to unwrap.
	if _, ok := raw["transaction"].(map[string]any); !ok {
		t.Fatalf("envelope not preserved: %+v", raw)
	}
}

func TestDecodeRawTransactionInvalidJSON(t *testing.T) {
	if _, err := DecodeRawTransaction(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}
