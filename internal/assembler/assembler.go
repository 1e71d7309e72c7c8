// Package assembler converts between the raw, possibly-partial transaction
// shapes seen at the persistence/API boundary and the canonical domain
// shapes. It makes shapes safe, not content correct: every conversion
// degrades to a default instead of failing, and the output is expected to be
// re-validated before it is trusted for business decisions.
package assembler

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/henry1266/pharmacy-ledger/internal/domain"
)

// Assembler normalizes raw transaction representations.
type Assembler struct {
	logger zerolog.Logger
	// now is swappable for tests
	now func() time.Time
}

// New creates a new Assembler.
func New(logger zerolog.Logger) *Assembler {
	return &Assembler{
		logger: logger,
		now:    time.Now,
	}
}

// Accepted date layouts for raw inbound values, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ConvertInbound normalizes a raw transaction object into the canonical
// domain shape. The raw object may itself be an envelope with the
// transaction fields nested under "transaction" and the entries supplied as
// a sibling list; that nesting is unwrapped here and never leaks further.
// A nil input logs a warning and yields the zero value.
func (a *Assembler) ConvertInbound(raw map[string]any) domain.TransactionGroup {
	if raw == nil {
		a.logger.Warn().Msg("inbound transaction is nil, returning empty transaction")
		return domain.TransactionGroup{}
	}

	raw = a.unwrapEnvelope(raw)

	tx := domain.TransactionGroup{
		ID:              asString(SafeGet(raw, "id", "")),
		Description:     asString(SafeGet(raw, "description", "")),
		TransactionDate: a.parseDate(SafeGet(raw, "transactionDate", nil)),
		ReceiptURL:      asString(SafeGet(raw, "receiptUrl", "")),
		InvoiceNo:       asString(SafeGet(raw, "invoiceNo", "")),
		Status:          domain.Status(asString(SafeGet(raw, "status", string(domain.DefaultStatus())))),
		FundingType:     domain.FundingTypeOriginal,
	}

	if org := strings.TrimSpace(asString(SafeGet(raw, "organizationId", ""))); org != "" {
		tx.OrganizationID = &org
	}

	if ft := domain.FundingType(asString(SafeGet(raw, "fundingType", ""))); domain.IsValidFundingType(ft) {
		tx.FundingType = ft
	}

	if src := asString(SafeGet(raw, "sourceTransactionId", "")); src != "" {
		tx.SourceTransactionID = src
	}

	if linked := asStringSlice(SafeGet(raw, "linkedTransactionIds", nil)); len(linked) > 0 {
		tx.LinkedTransactionIDs = linked
	}

	rawEntries, _ := SafeGet(raw, "entries", nil).([]any)

	tx.Entries = make([]domain.Entry, 0, len(rawEntries))
	for _, re := range rawEntries {
		m, ok := re.(map[string]any)
		if !ok {
			continue
		}
		tx.Entries = append(tx.Entries, a.ConvertInboundEntry(m))
	}

	return tx
}

// ConvertInboundEntry normalizes a single raw entry, defaulting every field
// and passing the lineage fields through untouched.
func (a *Assembler) ConvertInboundEntry(raw map[string]any) domain.Entry {
	if raw == nil {
		return domain.Entry{}
	}

	entry := domain.Entry{
		AccountID:    asString(SafeGet(raw, "accountId", "")),
		DebitAmount:  asDecimal(SafeGet(raw, "debitAmount", nil)),
		CreditAmount: asDecimal(SafeGet(raw, "creditAmount", nil)),
		Description:  asString(SafeGet(raw, "description", "")),
	}

	if src := asString(SafeGet(raw, "sourceTransactionId", "")); src != "" {
		entry.SourceTransactionID = src
	}

	if path := asStringSlice(SafeGet(raw, "fundingPath", nil)); len(path) > 0 {
		entry.FundingPath = path
	}

	return entry
}

// PrepareCopy derives a fresh draft seed from an existing transaction. Free
// text and document references are cleared, the date resets to now, and the
// funding lineage is stripped entirely: a copy starts its own lineage rather
// than silently inheriting the original's funding relationships. Accounts
// and amounts are preserved.
func (a *Assembler) PrepareCopy(original domain.TransactionGroup) domain.TransactionGroup {
	seed := domain.TransactionGroup{
		TransactionDate: a.now(),
		OrganizationID:  original.OrganizationID,
		Status:          domain.DefaultStatus(),
		FundingType:     domain.FundingTypeOriginal,
	}

	seed.Entries = make([]domain.Entry, len(original.Entries))
	for i, e := range original.Entries {
		seed.Entries[i] = domain.Entry{
			AccountID:    e.AccountID,
			DebitAmount:  e.DebitAmount,
			CreditAmount: e.CreditAmount,
		}
	}

	return seed
}

// CleanForSubmission normalizes a transaction into its outbound form: free
// text trimmed, a blank organization scope collapsed to nil so storage can
// tell "not scoped" from "empty string", empty lineage collections dropped,
// the funding type defaulted, and each entry's missing description inherited
// from the transaction. The operation is idempotent.
func (a *Assembler) CleanForSubmission(tx domain.TransactionGroup) domain.TransactionGroup {
	out := tx

	out.Description = strings.TrimSpace(tx.Description)
	out.ReceiptURL = strings.TrimSpace(tx.ReceiptURL)
	out.InvoiceNo = strings.TrimSpace(tx.InvoiceNo)

	out.OrganizationID = nil
	if tx.OrganizationID != nil {
		if org := strings.TrimSpace(*tx.OrganizationID); org != "" {
			out.OrganizationID = &org
		}
	}

	if len(tx.LinkedTransactionIDs) == 0 {
		out.LinkedTransactionIDs = nil
	}

	if !domain.IsValidFundingType(tx.FundingType) {
		out.FundingType = domain.FundingTypeOriginal
	}

	out.Entries = make([]domain.Entry, len(tx.Entries))
	for i, e := range tx.Entries {
		cleaned := e
		cleaned.Description = strings.TrimSpace(e.Description)
		if cleaned.Description == "" {
			cleaned.Description = out.Description
		}
		out.Entries[i] = cleaned
	}

	return out
}

// SafeGet reads a dot-separated path from a nested map, returning def on any
// failure along the path. It never panics.
func SafeGet(obj map[string]any, path string, def any) any {
	if obj == nil || path == "" {
		return def
	}

	current := any(obj)
	for _, key := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}

		current, ok = m[key]
		if !ok {
			return def
		}
	}

	if current == nil {
		return def
	}

	return current
}

// unwrapEnvelope flattens the {transaction: {...}, entries: [...]} wrapper
// some callers hand back, preferring the nested fields and the sibling
// entries list when present.
func (a *Assembler) unwrapEnvelope(raw map[string]any) map[string]any {
	nested, ok := SafeGet(raw, "transaction", nil).(map[string]any)
	if !ok {
		return raw
	}

	flattened := make(map[string]any, len(nested)+1)
	for k, v := range nested {
		flattened[k] = v
	}

	if _, present := flattened["entries"]; !present {
		if entries, ok := raw["entries"]; ok {
			flattened["entries"] = entries
		}
	}

	return flattened
}

func (a *Assembler) parseDate(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		if !d.IsZero() {
			return d
		}
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, d); err == nil {
				return parsed
			}
		}
	}

	return a.now()
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asDecimal(v any) decimal.Decimal {
	switch n := v.(type) {
	case decimal.Decimal:
		return n
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
			return d
		}
	}

	return decimal.Zero
}

func asStringSlice(v any) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}

	return nil
}
