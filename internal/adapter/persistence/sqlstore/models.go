package sqlstore

import (
	"fmt"
	"time"

	"afclean/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// jobModel maps the jobs table. Photo collections are JSON array text.
type jobModel struct {
	ID            string          `gorm:"primaryKey;size:36"`
	CustomerName  string          `gorm:"not null"`
	Address       string          `gorm:"not null"`
	Phone         string          `gorm:"not null"`
	ScheduledAt   time.Time       `gorm:"index;not null"`
	ServiceType   string          `gorm:"size:64"`
	Status        string          `gorm:"size:16;index;not null"`
	BeforePhotos  string          `gorm:"type:text"`
	AfterPhotos   string          `gorm:"type:text"`
	Signature     string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:text"`
	PaymentMethod string          `gorm:"size:32"`
	Installments  int             `gorm:"not null;default:1"`
	CreatedAt     time.Time
}

func (jobModel) TableName() string { return "jobs" }

type ledgerModel struct {
	ID          string          `gorm:"primaryKey;size:36"`
	Kind        string          `gorm:"size:16;not null"`
	Description string          `gorm:"size:255"`
	Amount      decimal.Decimal `gorm:"type:text"`
	Date        string          `gorm:"size:10;index;not null"`
	CreatedAt   time.Time
}

func (ledgerModel) TableName() string { return "ledger_entries" }

type settingModel struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text"`
}

func (settingModel) TableName() string { return "settings" }

// Migrate creates or updates the jobs, ledger_entries and settings tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&jobModel{}, &ledgerModel{}, &settingModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func toJobModel(j entities.Job) jobModel {
	return jobModel{
		ID:            j.ID,
		CustomerName:  j.CustomerName,
		Address:       j.Address,
		Phone:         j.Phone,
		ScheduledAt:   j.ScheduledAt.UTC(),
		ServiceType:   j.ServiceType,
		Status:        string(j.Status),
		BeforePhotos:  j.BeforePhotos.Encode(),
		AfterPhotos:   j.AfterPhotos.Encode(),
		Signature:     j.Signature,
		Price:         j.Price,
		PaymentMethod: j.PaymentMethod,
		Installments:  j.Installments,
		CreatedAt:     j.CreatedAt.UTC(),
	}
}

func (m jobModel) toEntity() entities.Job {
	return entities.Job{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		Address:       m.Address,
		Phone:         m.Phone,
		ScheduledAt:   m.ScheduledAt.UTC(),
		ServiceType:   m.ServiceType,
		Status:        entities.JobStatus(m.Status),
		BeforePhotos:  decodePhotos(m.ID, m.BeforePhotos),
		AfterPhotos:   decodePhotos(m.ID, m.AfterPhotos),
		Signature:     m.Signature,
		Price:         m.Price,
		PaymentMethod: m.PaymentMethod,
		Installments:  m.Installments,
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

func decodePhotos(jobID, raw string) entities.PhotoList {
	photos, err := entities.DecodePhotoList(raw)
	if err != nil {
		logrus.WithField("job_id", jobID).WithError(err).Warn("[job][sqlstore] unreadable photo collection")
		return entities.PhotoList{}
	}
	return photos
}

func toLedgerModel(e entities.LedgerEntry) ledgerModel {
	return ledgerModel{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt.UTC(),
	}
}

func (m ledgerModel) toEntity() entities.LedgerEntry {
	return entities.LedgerEntry{
		ID:          m.ID,
		Kind:        entities.LedgerKind(m.Kind),
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// columnValue turns a coerced change value into something database/sql accepts.
func columnValue(v any) (any, error) {
	switch x := v.(type) {
	case string, int, decimal.Decimal:
		return x, nil
	case entities.JobStatus:
		return string(x), nil
	case entities.LedgerKind:
		return string(x), nil
	case time.Time:
		return x.UTC(), nil
	}
	return nil, fmt.Errorf("unsupported column value %T", v)
}
