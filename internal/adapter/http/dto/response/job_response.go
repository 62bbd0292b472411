package response

import (
	"time"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase"
)

type JobResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	ServiceType   string    `json:"service_type"`
	Status        string    `json:"status"`
	BeforePhotos  []string  `json:"before_photos"`
	AfterPhotos   []string  `json:"after_photos"`
	Signature     string    `json:"signature,omitempty"`
	Price         float64   `json:"price"`
	PaymentMethod string    `json:"payment_method"`
	Installments  int       `json:"installments"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		ID:            j.ID,
		CustomerName:  j.CustomerName,
		Address:       j.Address,
		Phone:         j.Phone,
		ScheduledAt:   j.ScheduledAt,
		ServiceType:   j.ServiceType,
		Status:        string(j.Status),
		BeforePhotos:  photos(j.BeforePhotos),
		AfterPhotos:   photos(j.AfterPhotos),
		Signature:     j.Signature,
		Price:         j.Price.InexactFloat64(),
		PaymentMethod: j.PaymentMethod,
		Installments:  j.Installments,
		CreatedAt:     j.CreatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

type PhotosResponse struct {
	JobID  string   `json:"job_id"`
	Phase  string   `json:"phase"`
	Photos []string `json:"photos"`
}

func FromPhotos(jobID string, phase entities.PhotoPhase, list entities.PhotoList) PhotosResponse {
	return PhotosResponse{JobID: jobID, Phase: string(phase), Photos: photos(list)}
}

type FinalizeResponse struct {
	Job           JobResponse `json:"job"`
	LedgerEntryID string      `json:"ledger_entry_id,omitempty"`
}

func FromFinalizeResult(r usecase.FinalizeResult) FinalizeResponse {
	return FinalizeResponse{Job: FromJob(r.Job), LedgerEntryID: r.LedgerEntryID}
}

// ChangesResponse reports how many records a PATCH or DELETE touched.
type ChangesResponse struct {
	Changes int64 `json:"changes"`
}

// photos keeps empty collections as [] in JSON.
func photos(l entities.PhotoList) []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
