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

func newJobUseCase(t *testing.T, jobs *mock_interfaces.MockIJobRepository, ledgerRepo *mock_interfaces.MockILedgerRepository) *JobUseCase {
	ledger := NewLedgerUseCase(ledgerRepo, "")
	ledger.now = fixedClock(t)
	uc := NewJobUseCase(jobs, NewJobPatcher(jobs), ledger)
	uc.now = fixedClock(t)
	return uc
}

func TestJobUseCase_CreateJob(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs, store := newJobStore(ctrl)
		uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

		j, err := uc.CreateJob(ctx, JobInput{CustomerName: " Ana ", Address: "Rua A", Phone: "119", ScheduledAt: at})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.ID == "" {
			t.Fatalf("expected generated id")
		}
		if j.CustomerName != "Ana" || j.Status != entities.JobStatusPending {
			t.Fatalf("unexpected job: %+v", j)
		}
		if j.ServiceType != entities.DefaultServiceType || j.PaymentMethod != entities.DefaultPaymentMethod || j.Installments != 1 {
			t.Fatalf("defaults not applied: %+v", j)
		}
		if j.BeforePhotos == nil || j.AfterPhotos == nil {
			t.Fatalf("photo lists must be non-nil")
		}
		if !j.Price.IsZero() {
			t.Fatalf("expected zero price, got %s", j.Price)
		}
		if store.get(j.ID).ID != j.ID {
			t.Fatalf("job not stored")
		}
	})

	t.Run("pre-seeded in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs, _ := newJobStore(ctrl)
		uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

		j, err := uc.CreateJob(ctx, JobInput{CustomerName: "Ana", Address: "Rua A", Phone: "119", ScheduledAt: at,
			Status: entities.JobStatusInProgress, BeforePhotos: entities.PhotoList{"a"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Status != entities.JobStatusInProgress || len(j.BeforePhotos) != 1 {
			t.Fatalf("unexpected job: %+v", j)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		cases := []struct {
			name string
			in   JobInput
			want error
		}{
			{"no name", JobInput{Address: "a", Phone: "1", ScheduledAt: at}, ErrInvalidJobInput},
			{"no address", JobInput{CustomerName: "n", Phone: "1", ScheduledAt: at}, ErrInvalidJobInput},
			{"no phone", JobInput{CustomerName: "n", Address: "a", ScheduledAt: at}, ErrInvalidJobInput},
			{"no schedule", JobInput{CustomerName: "n", Address: "a", Phone: "1"}, ErrInvalidJobInput},
			{"negative price", JobInput{CustomerName: "n", Address: "a", Phone: "1", ScheduledAt: at, Price: decimal.NewFromInt(-1)}, ErrInvalidJobInput},
			{"created completed", JobInput{CustomerName: "n", Address: "a", Phone: "1", ScheduledAt: at, Status: entities.JobStatusCompleted}, ErrInvalidStatusTransition},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := newJobUseCase(t, mock_interfaces.NewMockIJobRepository(ctrl), mock_interfaces.NewMockILedgerRepository(ctrl))
				if _, err := uc.CreateJob(ctx, tc.in); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, errors.New("disk full"))
		uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

		if _, err := uc.CreateJob(ctx, JobInput{CustomerName: "n", Address: "a", Phone: "1", ScheduledAt: at}); !errors.Is(err, ErrPersistenceUnavailable) {
			t.Fatalf("expected ErrPersistenceUnavailable, got %v", err)
		}
	})
}

func TestJobUseCase_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

	jobs.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Job{}, nil)
	if _, err := uc.GetJob(ctx, "missing"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}

	jobs.EXPECT().Delete(gomock.Any(), "job-1").Return(int64(1), nil)
	if n, err := uc.DeleteJob(ctx, "job-1"); err != nil || n != 1 {
		t.Fatalf("expected 1 deleted, got %d (%v)", n, err)
	}

	jobs.EXPECT().Delete(gomock.Any(), "job-1").Return(int64(0), nil)
	if n, err := uc.DeleteJob(ctx, "job-1"); err != nil || n != 0 {
		t.Fatalf("expected 0 deleted, got %d (%v)", n, err)
	}
}

func TestJobUseCase_UpdateJob_StatusRules(t *testing.T) {
	ctx := context.Background()
	inProgress := pendingJob("job-1", "Ana")
	inProgress.Status = entities.JobStatusInProgress

	cases := []struct {
		name   string
		fields map[string]any
		want   error
		status entities.JobStatus
	}{
		{"regression", map[string]any{"status": "pending"}, ErrInvalidStatusTransition, entities.JobStatusInProgress},
		{"completed via patch", map[string]any{"status": "completed"}, ErrInvalidStatusTransition, entities.JobStatusInProgress},
		{"same status", map[string]any{"status": "in_progress", "phone": "22"}, nil, entities.JobStatusInProgress},
		{"no status", map[string]any{"phone": "22"}, nil, entities.JobStatusInProgress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			jobs, store := newJobStore(ctrl, inProgress)
			uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

			_, err := uc.UpdateJob(ctx, "job-1", tc.fields)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if got := store.get("job-1").Status; got != tc.status {
				t.Fatalf("expected status %s, got %s", tc.status, got)
			}
		})
	}

	t.Run("forward move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs, store := newJobStore(ctrl, pendingJob("job-1", "Ana"))
		uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

		n, err := uc.UpdateJob(ctx, "job-1", map[string]any{"status": "in_progress"})
		if err != nil || n != 1 {
			t.Fatalf("expected 1 changed, got %d (%v)", n, err)
		}
		if got := store.get("job-1").Status; got != entities.JobStatusInProgress {
			t.Fatalf("expected in_progress, got %s", got)
		}
	})

	t.Run("missing job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		jobs, _ := newJobStore(ctrl)
		uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

		for _, fields := range []map[string]any{{"phone": "1"}, {"status": "in_progress"}} {
			n, err := uc.UpdateJob(ctx, "nope", fields)
			if err != nil || n != 0 {
				t.Fatalf("expected 0 changed, got %d (%v)", n, err)
			}
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newJobUseCase(t, mock_interfaces.NewMockIJobRepository(ctrl), mock_interfaces.NewMockILedgerRepository(ctrl))

		if _, err := uc.UpdateJob(ctx, "job-1", map[string]any{"id": "job-1"}); !errors.Is(err, ErrEmptyUpdate) {
			t.Fatalf("expected ErrEmptyUpdate, got %v", err)
		}
	})
}

func TestJobUseCase_Finalize_Guards(t *testing.T) {
	ctx := context.Background()
	withAfter := pendingJob("job-1", "Ana")
	withAfter.Status = entities.JobStatusInProgress
	withAfter.AfterPhotos = entities.PhotoList{"after"}
	noAfter := pendingJob("job-1", "Ana")
	noAfter.BeforePhotos = entities.PhotoList{"before"}
	completed := withAfter
	completed.Status = entities.JobStatusCompleted

	cases := []struct {
		name string
		seed []entities.Job
		in   FinalizeInput
		want error
	}{
		{"missing job", nil, FinalizeInput{Signature: "sig"}, ErrJobNotFound},
		{"no after photos", []entities.Job{noAfter}, FinalizeInput{Signature: "sig"}, ErrIncompleteEvidence},
		{"no after photos and no signature", []entities.Job{noAfter}, FinalizeInput{}, ErrIncompleteEvidence},
		{"no signature", []entities.Job{withAfter}, FinalizeInput{Signature: "  "}, ErrMissingSignature},
		{"already completed", []entities.Job{completed}, FinalizeInput{Signature: "sig"}, ErrJobAlreadyCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			jobs, store := newJobStore(ctrl, tc.seed...)
			// no ledger EXPECT: a guard failure must never append
			uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

			_, err := uc.Finalize(ctx, "job-1", tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if store.updates != 0 {
				t.Fatalf("expected no job writes, got %d", store.updates)
			}
		})
	}

	t.Run("negative price override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newJobUseCase(t, mock_interfaces.NewMockIJobRepository(ctrl), mock_interfaces.NewMockILedgerRepository(ctrl))
		neg := decimal.NewFromInt(-5)

		if _, err := uc.Finalize(ctx, "job-1", FinalizeInput{Signature: "sig", Price: &neg}); !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})
}

func TestJobUseCase_Finalize_Success(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seed := pendingJob("job-1", "Bruno")
	seed.Status = entities.JobStatusInProgress
	seed.AfterPhotos = entities.PhotoList{"after"}
	seed.Price = decimal.NewFromInt(100)
	jobs, store := newJobStore(ctrl, seed)
	ledgerRepo, ledger := newLedgerStore(ctrl)
	uc := newJobUseCase(t, jobs, ledgerRepo)

	price := decimal.RequireFromString("180.50")
	res, err := uc.Finalize(ctx, "job-1", FinalizeInput{Signature: "data:image/png;base64,SIG", Price: &price, PaymentMethod: "Cartão", Installments: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.updates != 1 {
		t.Fatalf("expected a single job write, got %d", store.updates)
	}

	got := store.get("job-1")
	if got.Status != entities.JobStatusCompleted || got.Signature != "data:image/png;base64,SIG" {
		t.Fatalf("unexpected stored job: %+v", got)
	}
	if !got.Price.Equal(price) || got.PaymentMethod != "Cartão" || got.Installments != 2 {
		t.Fatalf("overrides not stored: %+v", got)
	}
	if res.Job.Status != entities.JobStatusCompleted || res.LedgerEntryID == "" {
		t.Fatalf("unexpected result: %+v", res)
	}

	entries := ledger.all()
	if len(entries) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID != res.LedgerEntryID || e.Kind != entities.LedgerKindIncome {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Description != "Limpeza: Bruno" || !e.Amount.Equal(price) || e.Date != "2024-06-01" {
		t.Fatalf("unexpected entry: %+v", e)
	}

	if _, err := uc.Finalize(ctx, "job-1", FinalizeInput{Signature: "again"}); !errors.Is(err, ErrJobAlreadyCompleted) {
		t.Fatalf("expected ErrJobAlreadyCompleted on second finalize, got %v", err)
	}
	if len(ledger.all()) != 1 {
		t.Fatalf("second finalize must not append")
	}
}

func TestJobUseCase_Finalize_LedgerFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seed := pendingJob("job-1", "Carla")
	seed.AfterPhotos = entities.PhotoList{"after"}
	jobs, store := newJobStore(ctrl, seed)
	ledgerRepo := mock_interfaces.NewMockILedgerRepository(ctrl)
	dbErr := errors.New("ledger offline")
	ledgerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.LedgerEntry{}, dbErr)
	uc := newJobUseCase(t, jobs, ledgerRepo)

	res, err := uc.Finalize(ctx, "job-1", FinalizeInput{Signature: "sig"})
	if !errors.Is(err, ErrLedgerWriteFailed) || !errors.Is(err, dbErr) {
		t.Fatalf("expected ErrLedgerWriteFailed, got %v", err)
	}
	if res.Job.Status != entities.JobStatusCompleted || res.LedgerEntryID != "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := store.get("job-1").Status; got != entities.JobStatusCompleted {
		t.Fatalf("job must stay completed, got %s", got)
	}
}

// A full visit: schedule, photograph, sign, and the books show the income.
func TestJobLifecycle_Visit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobs, store := newJobStore(ctrl)
	ledgerRepo, ledger := newLedgerStore(ctrl)
	uc := newJobUseCase(t, jobs, ledgerRepo)
	evidence := NewEvidenceUseCase(jobs, uc.patcher)

	j, err := uc.CreateJob(ctx, JobInput{
		CustomerName: "Ana",
		Address:      "Rua das Flores, 12",
		Phone:        "11988887777",
		ScheduledAt:  time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Price:        decimal.NewFromInt(150),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := uc.Finalize(ctx, j.ID, FinalizeInput{Signature: "sig"}); !errors.Is(err, ErrIncompleteEvidence) {
		t.Fatalf("expected ErrIncompleteEvidence before photos, got %v", err)
	}

	if _, err := evidence.AddPhoto(ctx, j.ID, entities.PhotoPhaseBefore, "before-1"); err != nil {
		t.Fatalf("add before: %v", err)
	}
	if got := store.get(j.ID).Status; got != entities.JobStatusInProgress {
		t.Fatalf("expected in_progress after first photo, got %s", got)
	}
	if _, err := evidence.AddPhoto(ctx, j.ID, entities.PhotoPhaseAfter, "after-1"); err != nil {
		t.Fatalf("add after: %v", err)
	}

	if _, err := uc.Finalize(ctx, j.ID, FinalizeInput{}); !errors.Is(err, ErrMissingSignature) {
		t.Fatalf("expected ErrMissingSignature, got %v", err)
	}

	res, err := uc.Finalize(ctx, j.ID, FinalizeInput{Signature: "data:image/png;base64,ANA"})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if res.Job.Status != entities.JobStatusCompleted {
		t.Fatalf("expected completed, got %s", res.Job.Status)
	}

	entries := ledger.all()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Description != "Limpeza: Ana" || !entries[0].Amount.Equal(decimal.NewFromInt(150)) || entries[0].Kind != entities.LedgerKindIncome {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}

	if _, err := uc.UpdateJob(ctx, j.ID, map[string]any{"status": "in_progress"}); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Fatalf("expected completed to be terminal, got %v", err)
	}
}

func TestJobUseCase_UpdateJob_WaitsForJobLock(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	job := pendingJob("job-1", "Ana")
	job.Status = entities.JobStatusInProgress
	job.AfterPhotos = entities.PhotoList{"after-1"}
	jobs, store := newJobStore(ctrl, job)
	uc := newJobUseCase(t, jobs, mock_interfaces.NewMockILedgerRepository(ctrl))

	// held as finalize holds it between its guards and its write
	unlock := uc.patcher.lockJob("job-1")

	done := make(chan error, 1)
	go func() {
		_, err := uc.UpdateJob(ctx, "job-1", map[string]any{"after_photos": "[]"})
		done <- err
	}()

	select {
	case err := <-done:
		unlock()
		t.Fatalf("expected patch to wait for the job lock, returned %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	if got := store.get("job-1").AfterPhotos; len(got) != 1 {
		unlock()
		t.Fatalf("expected after photos untouched while locked, got %v", got)
	}

	unlock()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("patch did not resume after unlock")
	}
	if got := store.get("job-1").AfterPhotos; len(got) != 0 {
		t.Fatalf("expected after photos cleared, got %v", got)
	}
}
