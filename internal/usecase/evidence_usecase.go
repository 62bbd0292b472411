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
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidPhotoPhase    = errors.New("invalid photo phase")
	ErrPhotoIndexOutOfRange = errors.New("photo index out of range")
	ErrEmptyPhoto           = errors.New("empty photo reference")
)

// IEvidenceUseCase manages the before/after photo checklist of a job.
//
// Adding a photo of either phase marks the job as started (pending -> in_progress)
// unless it is already completed. Removing never changes status.

type IEvidenceUseCase interface {
	AddPhoto(ctx context.Context, jobID string, phase entities.PhotoPhase, imageRef string) (entities.PhotoList, error)
	RemovePhoto(ctx context.Context, jobID string, phase entities.PhotoPhase, index int) (entities.PhotoList, error)
}

type EvidenceUseCase struct {
	repo    interfaces.IJobRepository
	patcher *JobPatcher
}

var _ IEvidenceUseCase = (*EvidenceUseCase)(nil)

func NewEvidenceUseCase(repo interfaces.IJobRepository, patcher *JobPatcher) *EvidenceUseCase {
	return &EvidenceUseCase{repo: repo, patcher: patcher}
}

func (u *EvidenceUseCase) AddPhoto(ctx context.Context, jobID string, phase entities.PhotoPhase, imageRef string) (entities.PhotoList, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	parsed, ok := entities.ParsePhotoPhase(string(phase))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhotoPhase, phase)
	}
	phase = parsed
	if strings.TrimSpace(imageRef) == "" {
		return nil, ErrEmptyPhoto
	}

	unlock := u.patcher.lockJob(jobID)
	defer unlock()

	job, err := u.load(ctx, jobID)
	if err != nil {
		return nil, err
	}

	photos := job.Photos(phase).Append(imageRef)
	changes := entities.JobChanges{phase.Field(): photos.Encode()}
	if job.Status != entities.JobStatusCompleted {
		changes[entities.JobFieldStatus] = entities.JobStatusInProgress
	} else {
		logrus.WithFields(logrus.Fields{"job_id": jobID, "phase": phase}).
			Warn("[evidence][usecase] photo added to completed job")
	}

	if err := u.write(ctx, jobID, changes); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"job_id": jobID, "phase": phase, "count": len(photos)}).
		Info("[evidence][usecase] photo added")
	return photos, nil
}

func (u *EvidenceUseCase) RemovePhoto(ctx context.Context, jobID string, phase entities.PhotoPhase, index int) (entities.PhotoList, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	parsed, ok := entities.ParsePhotoPhase(string(phase))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhotoPhase, phase)
	}
	phase = parsed

	unlock := u.patcher.lockJob(jobID)
	defer unlock()

	job, err := u.load(ctx, jobID)
	if err != nil {
		return nil, err
	}

	current := job.Photos(phase)
	photos, ok := current.RemoveAt(index)
	if !ok {
		return nil, fmt.Errorf("%w: index %d, %d photos", ErrPhotoIndexOutOfRange, index, len(current))
	}

	if err := u.write(ctx, jobID, entities.JobChanges{phase.Field(): photos.Encode()}); err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"job_id": jobID, "phase": phase, "index": index, "count": len(photos)}).
		Info("[evidence][usecase] photo removed")
	return photos, nil
}

func (u *EvidenceUseCase) load(ctx context.Context, jobID string) (entities.Job, error) {
	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, wrapPersistence(err)
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *EvidenceUseCase) write(ctx context.Context, jobID string, changes entities.JobChanges) error {
	changed, err := u.patcher.Apply(ctx, jobID, changes)
	if err != nil {
		return err
	}
	if changed == 0 {
		return ErrJobNotFound
	}
	return nil
}
