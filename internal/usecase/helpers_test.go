package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"afclean/internal/domain/entities"
	mock_interfaces "afclean/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// jobStore backs a MockIJobRepository with an in-memory map so multi-step
// flows can be observed end to end.
type jobStore struct {
	mu      sync.Mutex
	jobs    map[string]entities.Job
	updates int
}

func newJobStore(ctrl *gomock.Controller, jobs ...entities.Job) (*mock_interfaces.MockIJobRepository, *jobStore) {
	s := &jobStore{jobs: make(map[string]entities.Job)}
	for _, j := range jobs {
		s.jobs[j.ID] = j
	}
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, j entities.Job) (entities.Job, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.jobs[j.ID] = j
			return j, nil
		})
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, id string) (entities.Job, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.jobs[id], nil
		})
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, id string, c entities.JobChanges) (int64, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			j, ok := s.jobs[id]
			if !ok {
				return 0, nil
			}
			applyJobChanges(&j, c)
			s.jobs[id] = j
			s.updates++
			return 1, nil
		})
	return repo, s
}

func (s *jobStore) get(id string) entities.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

func applyJobChanges(j *entities.Job, c entities.JobChanges) {
	for f, v := range c {
		switch f {
		case entities.JobFieldCustomerName:
			j.CustomerName = v.(string)
		case entities.JobFieldAddress:
			j.Address = v.(string)
		case entities.JobFieldPhone:
			j.Phone = v.(string)
		case entities.JobFieldScheduledAt:
			j.ScheduledAt = v.(time.Time)
		case entities.JobFieldServiceType:
			j.ServiceType = v.(string)
		case entities.JobFieldStatus:
			j.Status = v.(entities.JobStatus)
		case entities.JobFieldBeforePhotos:
			j.BeforePhotos, _ = entities.DecodePhotoList(v.(string))
		case entities.JobFieldAfterPhotos:
			j.AfterPhotos, _ = entities.DecodePhotoList(v.(string))
		case entities.JobFieldSignature:
			j.Signature = v.(string)
		case entities.JobFieldPrice:
			j.Price = v.(decimal.Decimal)
		case entities.JobFieldPaymentMethod:
			j.PaymentMethod = v.(string)
		case entities.JobFieldInstallments:
			j.Installments = v.(int)
		}
	}
}

// ledgerStore records appended entries of a MockILedgerRepository.
type ledgerStore struct {
	mu      sync.Mutex
	entries []entities.LedgerEntry
}

func newLedgerStore(ctrl *gomock.Controller) (*mock_interfaces.MockILedgerRepository, *ledgerStore) {
	s := &ledgerStore{}
	repo := mock_interfaces.NewMockILedgerRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, e entities.LedgerEntry) (entities.LedgerEntry, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.entries = append(s.entries, e)
			return e, nil
		})
	return repo, s
}

func (s *ledgerStore) all() []entities.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.LedgerEntry(nil), s.entries...)
}

func pendingJob(id, name string) entities.Job {
	return entities.Job{
		ID:            id,
		CustomerName:  name,
		Address:       "Rua A, 10",
		Phone:         "11999990000",
		ScheduledAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		ServiceType:   entities.DefaultServiceType,
		Status:        entities.JobStatusPending,
		BeforePhotos:  entities.PhotoList{},
		AfterPhotos:   entities.PhotoList{},
		PaymentMethod: entities.DefaultPaymentMethod,
		Installments:  entities.DefaultInstallments,
	}
}

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	now := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	return func() time.Time { return now }
}
