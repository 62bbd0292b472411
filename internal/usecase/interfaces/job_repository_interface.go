package interfaces

import (
	"context"
	"afclean/internal/domain/entities"
)

// IJobRepository abstracts persistence for Job.
//
// The lifecycle core must be able to:
//   - read a job by id (zero Job when missing, no error)
//   - list jobs ordered by scheduled_at descending
//   - apply a whitelisted change set in a single write and report rows changed
//   - delete a job unconditionally and report rows changed

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	Update(ctx context.Context, id string, changes entities.JobChanges) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
