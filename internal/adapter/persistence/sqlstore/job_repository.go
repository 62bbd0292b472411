package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

var _ interfaces.IJobRepository = (*JobRepository)(nil)

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	m := toJobModel(j)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	var m jobModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, err
	}
	return m.toEntity(), nil
}

func (r *JobRepository) List(ctx context.Context) ([]entities.Job, error) {
	var rows []jobModel
	if err := r.db.WithContext(ctx).Order("scheduled_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	jobs := make([]entities.Job, 0, len(rows))
	for _, m := range rows {
		jobs = append(jobs, m.toEntity())
	}
	return jobs, nil
}

// Update writes every change in one UPDATE statement. Column names come from
// the JobField whitelist only.
func (r *JobRepository) Update(ctx context.Context, id string, changes entities.JobChanges) (int64, error) {
	cols := make(map[string]any, len(changes))
	for f, v := range changes {
		if !f.IsMutable() {
			return 0, fmt.Errorf("job field %q is not writable", f)
		}
		cv, err := columnValue(v)
		if err != nil {
			return 0, fmt.Errorf("job field %q: %w", f, err)
		}
		cols[string(f)] = cv
	}
	res := r.db.WithContext(ctx).Model(&jobModel{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&jobModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
