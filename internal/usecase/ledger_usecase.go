package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrLedgerWriteFailed   = errors.New("ledger write failed")
	ErrLedgerEntryNotFound = errors.New("ledger entry not found")
	ErrInvalidLedgerEntry  = errors.New("invalid ledger entry")
	ErrInvalidLedgerID     = errors.New("invalid ledger entry id")
)

const DefaultLedgerDescriptionPrefix = "Limpeza"

// ILedgerSync derives the income record of a completed job.
type ILedgerSync interface {
	RecordCompletion(ctx context.Context, job entities.Job) (string, error)
}

// ILedgerUseCase exposes ledger bookkeeping.
//
//   - RecordCompletion is the finalize hook (append-only, one entry per call)
//   - the remaining operations are the manual bookkeeping passthroughs

type ILedgerUseCase interface {
	ILedgerSync
	ListEntries(ctx context.Context) ([]entities.LedgerEntry, error)
	CreateEntry(ctx context.Context, in LedgerEntryInput) (entities.LedgerEntry, error)
	UpdateEntry(ctx context.Context, id string, fields map[string]any) (int64, error)
	DeleteEntry(ctx context.Context, id string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// LedgerEntryInput is a manual ledger entry. An empty Date means today.
type LedgerEntryInput struct {
	Kind        entities.LedgerKind
	Description string
	Amount      decimal.Decimal
	Date        string
}

type LedgerUseCase struct {
	repo              interfaces.ILedgerRepository
	descriptionPrefix string
	now               func() time.Time
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(repo interfaces.ILedgerRepository, descriptionPrefix string) *LedgerUseCase {
	descriptionPrefix = strings.TrimSpace(descriptionPrefix)
	if descriptionPrefix == "" {
		descriptionPrefix = DefaultLedgerDescriptionPrefix
	}
	return &LedgerUseCase{repo: repo, descriptionPrefix: descriptionPrefix, now: time.Now}
}

// CompletionDescription is the deterministic description of a finalize entry.
func (u *LedgerUseCase) CompletionDescription(customerName string) string {
	return fmt.Sprintf("%s: %s", u.descriptionPrefix, strings.TrimSpace(customerName))
}

func (u *LedgerUseCase) RecordCompletion(ctx context.Context, job entities.Job) (string, error) {
	now := u.now().UTC()
	e := entities.LedgerEntry{
		ID:          uuid.NewString(),
		Kind:        entities.LedgerKindIncome,
		Description: u.CompletionDescription(job.CustomerName),
		Amount:      job.Price,
		Date:        now.Format(entities.LedgerDateLayout),
		CreatedAt:   now,
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		logrus.WithFields(logrus.Fields{"job_id": job.ID, "amount": job.Price.String()}).
			WithError(err).Error("[ledger][usecase] completion entry failed")
		return "", fmt.Errorf("%w: %w", ErrLedgerWriteFailed, err)
	}
	logrus.WithFields(logrus.Fields{"job_id": job.ID, "entry_id": created.ID, "amount": created.Amount.String()}).
		Info("[ledger][usecase] completion entry recorded")
	return created.ID, nil
}

func (u *LedgerUseCase) ListEntries(ctx context.Context) ([]entities.LedgerEntry, error) {
	entries, err := u.repo.List(ctx)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return entries, nil
}

func (u *LedgerUseCase) CreateEntry(ctx context.Context, in LedgerEntryInput) (entities.LedgerEntry, error) {
	if !in.Kind.Valid() {
		return entities.LedgerEntry{}, fmt.Errorf("%w: kind %q", ErrInvalidLedgerEntry, in.Kind)
	}
	if in.Amount.IsNegative() {
		return entities.LedgerEntry{}, fmt.Errorf("%w: negative amount", ErrInvalidLedgerEntry)
	}

	now := u.now().UTC()
	date := now.Format(entities.LedgerDateLayout)
	if strings.TrimSpace(in.Date) != "" {
		d, err := normalizeLedgerDate(in.Date)
		if err != nil {
			return entities.LedgerEntry{}, fmt.Errorf("%w: %w", ErrInvalidLedgerEntry, err)
		}
		date = d
	}

	e := entities.LedgerEntry{
		ID:          uuid.NewString(),
		Kind:        in.Kind,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        date,
		CreatedAt:   now,
	}
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.LedgerEntry{}, wrapPersistence(err)
	}
	logrus.WithFields(logrus.Fields{"entry_id": created.ID, "kind": created.Kind}).Info("[ledger][usecase] entry created")
	return created, nil
}

func (u *LedgerUseCase) UpdateEntry(ctx context.Context, id string, fields map[string]any) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrInvalidLedgerID
	}
	changes, err := coerceLedgerFields(fields)
	if err != nil {
		return 0, err
	}
	if len(changes) == 0 {
		return 0, ErrEmptyUpdate
	}

	changed, err := u.repo.Update(ctx, id, changes)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	logrus.WithFields(logrus.Fields{"entry_id": id, "changed": changed}).Info("[ledger][usecase] entry updated")
	return changed, nil
}

func (u *LedgerUseCase) DeleteEntry(ctx context.Context, id string) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrInvalidLedgerID
	}
	changed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	logrus.WithFields(logrus.Fields{"entry_id": id, "changed": changed}).Info("[ledger][usecase] entry deleted")
	return changed, nil
}

func (u *LedgerUseCase) DeleteAll(ctx context.Context) (int64, error) {
	changed, err := u.repo.DeleteAll(ctx)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	logrus.WithField("changed", changed).Warn("[ledger][usecase] ledger cleared")
	return changed, nil
}

// normalizeLedgerDate accepts YYYY-MM-DD or a full timestamp and returns the
// calendar date part.
func normalizeLedgerDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(entities.LedgerDateLayout, raw); err == nil {
		return t.Format(entities.LedgerDateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.Format(entities.LedgerDateLayout), nil
	}
	return "", fmt.Errorf("%w: date %q", ErrInvalidFieldValue, raw)
}
