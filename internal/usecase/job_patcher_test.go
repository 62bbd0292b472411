package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"afclean/internal/domain/entities"
	mock_interfaces "afclean/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestJobPatcher_ApplyPatch_Validations(t *testing.T) {
	cases := []struct {
		name   string
		id     string
		fields map[string]any
		want   error
	}{
		{name: "blank id", id: "  ", fields: map[string]any{"phone": "1"}, want: ErrInvalidJobID},
		{name: "empty fields", id: "job-1", fields: map[string]any{}, want: ErrEmptyUpdate},
		{name: "nil fields", id: "job-1", fields: nil, want: ErrEmptyUpdate},
		{name: "only id", id: "job-1", fields: map[string]any{"id": "job-2"}, want: ErrEmptyUpdate},
		{name: "only nil values", id: "job-1", fields: map[string]any{"id": "job-2", "price": nil, "phone": nil}, want: ErrEmptyUpdate},
		{name: "unknown field", id: "job-1", fields: map[string]any{"created_at": "2024-01-01"}, want: ErrUnknownField},
		{name: "negative price", id: "job-1", fields: map[string]any{"price": -1.0}, want: ErrInvalidFieldValue},
		{name: "price not numeric", id: "job-1", fields: map[string]any{"price": "abc"}, want: ErrInvalidFieldValue},
		{name: "zero installments", id: "job-1", fields: map[string]any{"installments": 0.0}, want: ErrInvalidFieldValue},
		{name: "fractional installments", id: "job-1", fields: map[string]any{"installments": 1.5}, want: ErrInvalidFieldValue},
		{name: "unknown status", id: "job-1", fields: map[string]any{"status": "archived"}, want: ErrInvalidFieldValue},
		{name: "blank customer name", id: "job-1", fields: map[string]any{"customer_name": "  "}, want: ErrInvalidFieldValue},
		{name: "photos not encoded", id: "job-1", fields: map[string]any{"after_photos": []any{"a"}}, want: ErrInvalidFieldValue},
		{name: "bad scheduled_at", id: "job-1", fields: map[string]any{"scheduled_at": "tomorrow"}, want: ErrInvalidFieldValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			// no EXPECT: any repository write fails the test
			repo := mock_interfaces.NewMockIJobRepository(ctrl)
			p := NewJobPatcher(repo)

			changed, err := p.ApplyPatch(context.Background(), tc.id, tc.fields)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if changed != 0 {
				t.Fatalf("expected 0 changed, got %d", changed)
			}
		})
	}
}

func TestJobPatcher_ApplyPatch_SingleWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	p := NewJobPatcher(repo)

	repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).Times(1).DoAndReturn(
		func(_ context.Context, _ string, c entities.JobChanges) (int64, error) {
			if _, ok := c["id"]; ok {
				t.Fatalf("id must be stripped")
			}
			if len(c) != 7 {
				t.Fatalf("expected 7 changes, got %d: %v", len(c), c)
			}
			if c[entities.JobFieldCustomerName] != "Ana" {
				t.Fatalf("unexpected customer_name: %v", c[entities.JobFieldCustomerName])
			}
			if price := c[entities.JobFieldPrice].(decimal.Decimal); !price.Equal(decimal.NewFromInt(150)) {
				t.Fatalf("unexpected price: %s", price)
			}
			if c[entities.JobFieldInstallments] != 3 {
				t.Fatalf("unexpected installments: %v", c[entities.JobFieldInstallments])
			}
			if c[entities.JobFieldStatus] != entities.JobStatusInProgress {
				t.Fatalf("unexpected status: %v", c[entities.JobFieldStatus])
			}
			want := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
			if at := c[entities.JobFieldScheduledAt].(time.Time); !at.Equal(want) {
				t.Fatalf("unexpected scheduled_at: %s", at)
			}
			if c[entities.JobFieldAfterPhotos] != `["a"]` {
				t.Fatalf("photos must pass through untouched: %v", c[entities.JobFieldAfterPhotos])
			}
			if c[entities.JobFieldSignature] != "" {
				t.Fatalf("explicit empty signature must be written: %v", c[entities.JobFieldSignature])
			}
			return 1, nil
		},
	)

	changed, err := p.ApplyPatch(context.Background(), " job-1 ", map[string]any{
		"id":            "other",
		"customer_name": " Ana ",
		"price":         150.0,
		"installments":  3.0,
		"status":        "in_progress",
		"scheduled_at":  "2024-06-01T10:00",
		"after_photos":  `["a"]`,
		"signature":     "",
		"phone":         nil,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed != 1 {
		t.Fatalf("expected 1 changed, got %d", changed)
	}
}

func TestJobPatcher_Apply_NotFoundAndErrors(t *testing.T) {
	t.Run("not found is zero count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		p := NewJobPatcher(repo)
		repo.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(int64(0), nil)

		changed, err := p.ApplyPatch(context.Background(), "missing", map[string]any{"phone": "11"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed != 0 {
			t.Fatalf("expected 0, got %d", changed)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		p := NewJobPatcher(repo)
		dbErr := errors.New("db")
		repo.EXPECT().Update(gomock.Any(), "job-1", gomock.Any()).Return(int64(0), dbErr)

		_, err := p.ApplyPatch(context.Background(), "job-1", map[string]any{"phone": "11"})
		if !errors.Is(err, ErrPersistenceUnavailable) || !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped persistence error, got %v", err)
		}
	})

	t.Run("typed changes outside whitelist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		p := NewJobPatcher(repo)

		_, err := p.Apply(context.Background(), "job-1", entities.JobChanges{"id": "x"})
		if !errors.Is(err, ErrUnknownField) {
			t.Fatalf("expected ErrUnknownField, got %v", err)
		}
	})
}

func TestParseScheduledAt(t *testing.T) {
	want := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2024-06-01T10:00", "2024-06-01T10:00:00", "2024-06-01T10:00:00Z", "2024-06-01T07:00:00-03:00"} {
		got, err := ParseScheduledAt(raw)
		if err != nil {
			t.Fatalf("parse %q: unexpected error: %v", raw, err)
		}
		if !got.Equal(want) {
			t.Fatalf("parse %q: expected %s, got %s", raw, want, got)
		}
	}
	if _, err := ParseScheduledAt(""); !errors.Is(err, ErrInvalidFieldValue) {
		t.Fatalf("expected ErrInvalidFieldValue, got %v", err)
	}
}
