package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	// MinEntries is the double-entry minimum: one leg cannot balance.
	MinEntries = 2
	// BalanceTolerance is the largest debit/credit difference still treated
	// as balanced, absorbing rounding from upstream float inputs.
	BalanceTolerance = "0.01"
)

var objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidationResult is the verdict for a candidate transaction or entry set.
// Failures are reported, never thrown; callers decide whether to block
// submission, so a result is safe to recompute after every user edit.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

func resultFromErrors(errs []string) ValidationResult {
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// BalanceDetails is the raw balance readout for callers that need numbers,
// not just a pass/fail (e.g. a running balance indicator during editing).
type BalanceDetails struct {
	IsBalanced  bool
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Difference  decimal.Decimal
}

func balanceTolerance() decimal.Decimal {
	d, _ := decimal.NewFromString(BalanceTolerance)
	return d
}

// ValidateBasicInfo checks the transaction's required header fields. All
// applicable failures are collected; nothing short-circuits.
func ValidateBasicInfo(tx *TransactionGroup) ValidationResult {
	var errs []string

	if strings.TrimSpace(tx.Description) == "" {
		errs = append(errs, "transaction description is required")
	}

	if tx.TransactionDate.IsZero() {
		errs = append(errs, "transaction date is required")
	}

	return resultFromErrors(errs)
}

// ValidateEntries checks each entry for structural correctness. A list with
// fewer than two entries fails with a single error and no per-entry checks,
// so a half-built form is not flooded with redundant messages. Entry indexes
// in messages start at 1.
func ValidateEntries(entries []Entry) ValidationResult {
	if len(entries) < MinEntries {
		return resultFromErrors([]string{
			fmt.Sprintf("at least %d entries are required for a double-entry transaction", MinEntries),
		})
	}

	var errs []string

	for i, e := range entries {
		n := i + 1

		if strings.TrimSpace(e.AccountID) == "" {
			errs = append(errs, fmt.Sprintf("entry %d: account is required", n))
		}

		debitPositive := e.DebitAmount.IsPositive()
		creditPositive := e.CreditAmount.IsPositive()

		if !debitPositive && !creditPositive {
			errs = append(errs, fmt.Sprintf("entry %d: either debit or credit amount must be positive", n))
		}

		if debitPositive && creditPositive {
			errs = append(errs, fmt.Sprintf("entry %d: debit and credit amounts cannot both be positive", n))
		}

		if e.DebitAmount.IsNegative() {
			errs = append(errs, fmt.Sprintf("entry %d: debit amount cannot be negative", n))
		}

		if e.CreditAmount.IsNegative() {
			errs = append(errs, fmt.Sprintf("entry %d: credit amount cannot be negative", n))
		}
	}

	return resultFromErrors(errs)
}

// ValidateBalance checks that total debits and credits agree within
// BalanceTolerance. The failure message carries the absolute difference
// formatted to two decimal places.
func ValidateBalance(entries []Entry) ValidationResult {
	details := GetBalanceDetails(entries)
	if details.IsBalanced {
		return resultFromErrors(nil)
	}

	return resultFromErrors([]string{
		fmt.Sprintf("debit and credit totals differ by %s", details.Difference.StringFixed(2)),
	})
}

// ValidateTransaction runs all checks and concatenates their errors. This is
// the single entry point callers should use before submission.
func ValidateTransaction(tx *TransactionGroup) ValidationResult {
	var errs []string

	errs = append(errs, ValidateBasicInfo(tx).Errors...)
	errs = append(errs, ValidateEntries(tx.Entries).Errors...)
	errs = append(errs, ValidateBalance(tx.Entries).Errors...)

	return resultFromErrors(errs)
}

// CalculateTotalAmount sums the debit side of the entries. For a balanced
// transaction this equals the credit total and serves as the headline amount.
func CalculateTotalAmount(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.DebitAmount)
	}
	return total
}

// GetBalanceDetails computes the debit/credit totals and their absolute
// difference.
func GetBalanceDetails(entries []Entry) BalanceDetails {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, e := range entries {
		totalDebit = totalDebit.Add(e.DebitAmount)
		totalCredit = totalCredit.Add(e.CreditAmount)
	}

	difference := totalDebit.Sub(totalCredit).Abs()

	return BalanceDetails{
		IsBalanced:  difference.LessThanOrEqual(balanceTolerance()),
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  difference,
	}
}

// IsValidObjectID reports whether id is a 24-character hex identifier. Any
// externally supplied account or transaction id should pass this check
// before being trusted as a reference.
func IsValidObjectID(id string) bool {
	return objectIDRegex.MatchString(id)
}
