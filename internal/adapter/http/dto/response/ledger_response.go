package response

import (
	"time"

	"afclean/internal/domain/entities"
)

type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromLedgerEntry(e entities.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
	}
}

func FromLedgerEntries(entries []entities.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromLedgerEntry(e))
	}
	return out
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
