package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus represents the lifecycle of a field-service job.
//
// Domain notes:
//   - pending -> in_progress happens on the first evidence photo.
//   - in_progress -> completed happens only through finalize.
//   - completed is terminal.

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
)

const (
	DefaultServiceType   = "Limpeza de Sofá"
	DefaultPaymentMethod = "Dinheiro"
	DefaultInstallments  = 1
)

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}

// Rank orders statuses along the lifecycle; unknown statuses rank -1.
func (s JobStatus) Rank() int {
	switch s {
	case JobStatusPending:
		return 0
	case JobStatusInProgress:
		return 1
	case JobStatusCompleted:
		return 2
	}
	return -1
}

// Job is a scheduled cleaning service ("appointment") for one customer.
//
// Storage model:
//   - PK: id
//   - before_photos / after_photos are persisted as a JSON array string (see PhotoList).
//
// Monetary representation:
//   - Price is the agreed service total; it becomes the ledger amount on finalize.
type Job struct {
	ID            string
	CustomerName  string
	Address       string
	Phone         string
	ScheduledAt   time.Time
	ServiceType   string
	Status        JobStatus
	BeforePhotos  PhotoList
	AfterPhotos   PhotoList
	Signature     string
	Price         decimal.Decimal
	PaymentMethod string
	Installments  int
	CreatedAt     time.Time
}

// Photos returns the collection for phase.
func (j Job) Photos(phase PhotoPhase) PhotoList {
	if phase == PhotoPhaseBefore {
		return j.BeforePhotos
	}
	return j.AfterPhotos
}
