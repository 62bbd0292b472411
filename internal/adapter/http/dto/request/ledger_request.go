package request

import (
	"strings"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateLedgerEntryRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=income expense"`
	Description string          `json:"description" binding:"max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

func (r CreateLedgerEntryRequest) ResolveInput() usecase.LedgerEntryInput {
	return usecase.LedgerEntryInput{
		Kind:        entities.LedgerKind(strings.TrimSpace(r.Kind)),
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
	}
}
