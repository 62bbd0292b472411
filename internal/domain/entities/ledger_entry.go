package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type LedgerKind string

const (
	LedgerKindIncome  LedgerKind = "income"
	LedgerKindExpense LedgerKind = "expense"
)

func (k LedgerKind) Valid() bool {
	return k == LedgerKindIncome || k == LedgerKindExpense
}

// LedgerDateLayout is the calendar-date format of LedgerEntry.Date.
const LedgerDateLayout = "2006-01-02"

// LedgerEntry is one income or expense record of the business ledger.
//
// Entries are created manually or, exactly once per successful finalize, from a
// completed job. There is no reference back to the job; the description carries
// the customer name instead.
type LedgerEntry struct {
	ID          string
	Kind        LedgerKind
	Description string
	Amount      decimal.Decimal
	Date        string
	CreatedAt   time.Time
}

// Setting is a single key/value pair of the process-wide settings registry.
type Setting struct {
	Key   string
	Value string
}

const (
	SettingCompanyName = "company_name"
	SettingLogo        = "logo"
)
