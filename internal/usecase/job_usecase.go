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
	ErrInvalidJobInput         = errors.New("invalid job input")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrJobAlreadyCompleted     = errors.New("job already completed")
	ErrIncompleteEvidence      = errors.New("finalize requires at least one after photo")
	ErrMissingSignature        = errors.New("finalize requires a client signature")
)

// IJobUseCase is the job lifecycle: pending -> in_progress -> completed.
//
//   - CreateJob starts a job as pending (or in_progress when pre-seeded)
//   - UpdateJob patches whitelisted fields; status may only move forward and
//     completed is reserved to Finalize
//   - Finalize checks the evidence guards, completes the job in one write and
//     appends the income entry through the ledger sync

type IJobUseCase interface {
	CreateJob(ctx context.Context, in JobInput) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	ListJobs(ctx context.Context) ([]entities.Job, error)
	UpdateJob(ctx context.Context, id string, fields map[string]any) (int64, error)
	DeleteJob(ctx context.Context, id string) (int64, error)
	Finalize(ctx context.Context, id string, in FinalizeInput) (FinalizeResult, error)
}

// JobInput carries the creation fields. Zero values take the documented defaults.
type JobInput struct {
	CustomerName  string
	Address       string
	Phone         string
	ScheduledAt   time.Time
	ServiceType   string
	Status        entities.JobStatus
	Price         decimal.Decimal
	PaymentMethod string
	Installments  int
	BeforePhotos  entities.PhotoList
	AfterPhotos   entities.PhotoList
}

// FinalizeInput carries the values captured at the end of the service.
// A nil Price, empty PaymentMethod or zero Installments keeps the stored value.
type FinalizeInput struct {
	Signature     string
	Price         *decimal.Decimal
	PaymentMethod string
	Installments  int
}

// FinalizeResult is returned even when the ledger append fails, since the job
// is already completed at that point.
type FinalizeResult struct {
	Job           entities.Job
	LedgerEntryID string
}

type JobUseCase struct {
	repo    interfaces.IJobRepository
	patcher *JobPatcher
	ledger  ILedgerSync
	now     func() time.Time
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, patcher *JobPatcher, ledger ILedgerSync) *JobUseCase {
	return &JobUseCase{repo: repo, patcher: patcher, ledger: ledger, now: time.Now}
}

func (u *JobUseCase) CreateJob(ctx context.Context, in JobInput) (entities.Job, error) {
	name := strings.TrimSpace(in.CustomerName)
	address := strings.TrimSpace(in.Address)
	phone := strings.TrimSpace(in.Phone)
	switch {
	case name == "":
		return entities.Job{}, fmt.Errorf("%w: customer_name required", ErrInvalidJobInput)
	case address == "":
		return entities.Job{}, fmt.Errorf("%w: address required", ErrInvalidJobInput)
	case phone == "":
		return entities.Job{}, fmt.Errorf("%w: phone required", ErrInvalidJobInput)
	case in.ScheduledAt.IsZero():
		return entities.Job{}, fmt.Errorf("%w: scheduled_at required", ErrInvalidJobInput)
	case in.Price.IsNegative():
		return entities.Job{}, fmt.Errorf("%w: negative price", ErrInvalidJobInput)
	case in.Installments < 0:
		return entities.Job{}, fmt.Errorf("%w: installments must be positive", ErrInvalidJobInput)
	}

	status := in.Status
	if status == "" {
		status = entities.JobStatusPending
	}
	if status != entities.JobStatusPending && status != entities.JobStatusInProgress {
		return entities.Job{}, fmt.Errorf("%w: cannot create job as %q", ErrInvalidStatusTransition, status)
	}

	j := entities.Job{
		ID:            uuid.NewString(),
		CustomerName:  name,
		Address:       address,
		Phone:         phone,
		ScheduledAt:   in.ScheduledAt.UTC(),
		ServiceType:   defaultString(in.ServiceType, entities.DefaultServiceType),
		Status:        status,
		BeforePhotos:  nonNilPhotos(in.BeforePhotos),
		AfterPhotos:   nonNilPhotos(in.AfterPhotos),
		Price:         in.Price,
		PaymentMethod: defaultString(in.PaymentMethod, entities.DefaultPaymentMethod),
		Installments:  in.Installments,
		CreatedAt:     u.now().UTC(),
	}
	if j.Installments == 0 {
		j.Installments = entities.DefaultInstallments
	}

	created, err := u.repo.Create(ctx, j)
	if err != nil {
		logrus.WithError(err).Error("[job][usecase] create failed")
		return entities.Job{}, wrapPersistence(err)
	}
	logrus.WithFields(logrus.Fields{"job_id": created.ID, "status": created.Status}).Info("[job][usecase] job created")
	return created, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, wrapPersistence(err)
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) ListJobs(ctx context.Context) ([]entities.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, wrapPersistence(err)
	}
	return jobs, nil
}

func (u *JobUseCase) UpdateJob(ctx context.Context, id string, fields map[string]any) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrInvalidJobID
	}
	changes, err := coerceJobFields(fields)
	if err != nil {
		return 0, err
	}
	if len(changes) == 0 {
		return 0, ErrEmptyUpdate
	}

	// Every patch waits for in-flight photo edits and finalize on the same job.
	unlock := u.patcher.lockJob(id)
	defer unlock()

	next, hasStatus := changes[entities.JobFieldStatus].(entities.JobStatus)
	if !hasStatus {
		return u.patcher.Apply(ctx, id, changes)
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	if current.ID == "" {
		return 0, nil
	}
	if err := checkStatusTransition(current.Status, next); err != nil {
		logrus.WithFields(logrus.Fields{"job_id": id, "from": current.Status, "to": next}).
			Warn("[job][usecase] status transition rejected")
		return 0, err
	}
	return u.patcher.Apply(ctx, id, changes)
}

func (u *JobUseCase) DeleteJob(ctx context.Context, id string) (int64, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrInvalidJobID
	}
	changed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return 0, wrapPersistence(err)
	}
	logrus.WithFields(logrus.Fields{"job_id": id, "changed": changed}).Info("[job][usecase] job deleted")
	return changed, nil
}

func (u *JobUseCase) Finalize(ctx context.Context, id string, in FinalizeInput) (FinalizeResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return FinalizeResult{}, ErrInvalidJobID
	}
	if in.Price != nil && in.Price.IsNegative() {
		return FinalizeResult{}, fmt.Errorf("%w: negative price", ErrInvalidJobInput)
	}
	if in.Installments < 0 {
		return FinalizeResult{}, fmt.Errorf("%w: installments must be positive", ErrInvalidJobInput)
	}
	logrus.WithField("job_id", id).Info("[job][usecase] finalize start")

	unlock := u.patcher.lockJob(id)
	defer unlock()

	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return FinalizeResult{}, wrapPersistence(err)
	}
	if job.ID == "" {
		return FinalizeResult{}, ErrJobNotFound
	}
	if job.Status == entities.JobStatusCompleted {
		return FinalizeResult{}, ErrJobAlreadyCompleted
	}
	if len(job.AfterPhotos) == 0 {
		logrus.WithField("job_id", id).Warn("[job][usecase] finalize rejected: no after photos")
		return FinalizeResult{}, ErrIncompleteEvidence
	}
	if strings.TrimSpace(in.Signature) == "" {
		logrus.WithField("job_id", id).Warn("[job][usecase] finalize rejected: no signature")
		return FinalizeResult{}, ErrMissingSignature
	}

	job.Status = entities.JobStatusCompleted
	job.Signature = in.Signature
	if in.Price != nil {
		job.Price = *in.Price
	}
	if pm := strings.TrimSpace(in.PaymentMethod); pm != "" {
		job.PaymentMethod = pm
	}
	if in.Installments > 0 {
		job.Installments = in.Installments
	}
	if job.Installments == 0 {
		job.Installments = entities.DefaultInstallments
	}

	changed, err := u.patcher.Apply(ctx, id, entities.JobChanges{
		entities.JobFieldStatus:        job.Status,
		entities.JobFieldSignature:     job.Signature,
		entities.JobFieldPrice:         job.Price,
		entities.JobFieldPaymentMethod: job.PaymentMethod,
		entities.JobFieldInstallments:  job.Installments,
	})
	if err != nil {
		return FinalizeResult{}, err
	}
	if changed == 0 {
		return FinalizeResult{}, ErrJobNotFound
	}

	// The job stays completed when the ledger append fails.
	entryID, err := u.ledger.RecordCompletion(ctx, job)
	if err != nil {
		logrus.WithField("job_id", id).WithError(err).Error("[job][usecase] job completed without ledger entry")
		return FinalizeResult{Job: job}, err
	}

	logrus.WithFields(logrus.Fields{"job_id": id, "entry_id": entryID, "price": job.Price.String()}).
		Info("[job][usecase] finalize success")
	return FinalizeResult{Job: job, LedgerEntryID: entryID}, nil
}

func checkStatusTransition(from, to entities.JobStatus) error {
	if to == from {
		return nil
	}
	if to == entities.JobStatusCompleted {
		return fmt.Errorf("%w: %s -> %s requires finalize", ErrInvalidStatusTransition, from, to)
	}
	if to.Rank() < from.Rank() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
	}
	return nil
}

func defaultString(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}

func nonNilPhotos(l entities.PhotoList) entities.PhotoList {
	if l == nil {
		return entities.PhotoList{}
	}
	return l
}
