package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyUpdate            = errors.New("no updates provided")
	ErrUnknownField           = errors.New("unknown field")
	ErrInvalidFieldValue      = errors.New("invalid field value")
	ErrInvalidJobID           = errors.New("invalid job id")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
)

// IJobPatcher is the partial update engine used by every job mutation.
//
//   - ApplyPatch takes a caller-supplied field map, strips id, ignores nil values,
//     rejects fields outside entities.MutableJobFields and writes the rest at once.
//   - Apply writes an already coerced change set.
//
// Both report rows changed; 0 means the job does not exist and is not an error.

type IJobPatcher interface {
	ApplyPatch(ctx context.Context, jobID string, fields map[string]any) (int64, error)
	Apply(ctx context.Context, jobID string, changes entities.JobChanges) (int64, error)
}

type JobPatcher struct {
	repo  interfaces.IJobRepository
	locks *jobLocks
}

var _ IJobPatcher = (*JobPatcher)(nil)

func NewJobPatcher(repo interfaces.IJobRepository) *JobPatcher {
	return &JobPatcher{repo: repo, locks: newJobLocks()}
}

func (p *JobPatcher) ApplyPatch(ctx context.Context, jobID string, fields map[string]any) (int64, error) {
	changes, err := coerceJobFields(fields)
	if err != nil {
		return 0, err
	}
	return p.Apply(ctx, jobID, changes)
}

func (p *JobPatcher) Apply(ctx context.Context, jobID string, changes entities.JobChanges) (int64, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return 0, ErrInvalidJobID
	}
	if len(changes) == 0 {
		return 0, ErrEmptyUpdate
	}
	for f := range changes {
		if !f.IsMutable() {
			return 0, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	changed, err := p.repo.Update(ctx, jobID, changes)
	if err != nil {
		logrus.WithFields(logrus.Fields{"job_id": jobID, "fields": len(changes)}).
			WithError(err).Error("[job][patch] update failed")
		return 0, wrapPersistence(err)
	}
	logrus.WithFields(logrus.Fields{"job_id": jobID, "fields": len(changes), "changed": changed}).
		Debug("[job][patch] update applied")
	return changed, nil
}

// lockJob serializes read-modify-write sequences for one job id.
func (p *JobPatcher) lockJob(jobID string) func() {
	return p.locks.lock(jobID)
}

func wrapPersistence(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
}
