package request

import (
	"errors"
	"fmt"
	"strings"

	"afclean/internal/domain/entities"
	"afclean/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPhotoList = errors.New("photo collection must be an array of strings")
)

// CreateJobRequest is the scheduling form payload. Money accepts a JSON number
// or a numeric string.
type CreateJobRequest struct {
	CustomerName  string          `json:"customer_name" binding:"required"`
	Address       string          `json:"address" binding:"required"`
	Phone         string          `json:"phone" binding:"required"`
	ScheduledAt   string          `json:"scheduled_at" binding:"required"`
	ServiceType   string          `json:"service_type"`
	Status        string          `json:"status"`
	Price         decimal.Decimal `json:"price"`
	PaymentMethod string          `json:"payment_method"`
	Installments  int             `json:"installments"`
	BeforePhotos  []string        `json:"before_photos"`
	AfterPhotos   []string        `json:"after_photos"`
}

func (r CreateJobRequest) ResolveInput() (usecase.JobInput, error) {
	at, err := usecase.ParseScheduledAt(r.ScheduledAt)
	if err != nil {
		return usecase.JobInput{}, err
	}
	return usecase.JobInput{
		CustomerName:  r.CustomerName,
		Address:       r.Address,
		Phone:         r.Phone,
		ScheduledAt:   at,
		ServiceType:   r.ServiceType,
		Status:        entities.JobStatus(strings.TrimSpace(r.Status)),
		Price:         r.Price,
		PaymentMethod: r.PaymentMethod,
		Installments:  r.Installments,
		BeforePhotos:  entities.PhotoList(r.BeforePhotos),
		AfterPhotos:   entities.PhotoList(r.AfterPhotos),
	}, nil
}

// AddPhotoRequest carries one captured image (data URL or storage reference).
type AddPhotoRequest struct {
	Image string `json:"image" binding:"required"`
}

// FinalizeRequest is the end-of-service payload. Signature is checked by the
// use case so a missing one is reported as a guard failure, not a bad payload.
type FinalizeRequest struct {
	Signature     string           `json:"signature"`
	Price         *decimal.Decimal `json:"price"`
	PaymentMethod string           `json:"payment_method"`
	Installments  int              `json:"installments"`
}

func (r FinalizeRequest) ResolveInput() usecase.FinalizeInput {
	return usecase.FinalizeInput{
		Signature:     r.Signature,
		Price:         r.Price,
		PaymentMethod: r.PaymentMethod,
		Installments:  r.Installments,
	}
}

// NormalizeJobPatch encodes photo arrays of a PATCH body into their stored
// JSON form. Other fields are passed through to the update engine untouched.
func NormalizeJobPatch(fields map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
		if v == nil {
			continue
		}
		f := entities.JobField(k)
		if f != entities.JobFieldBeforePhotos && f != entities.JobFieldAfterPhotos {
			continue
		}
		photos, err := toPhotoList(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, k)
		}
		out[k] = photos.Encode()
	}
	return out, nil
}

func toPhotoList(v any) (entities.PhotoList, error) {
	switch x := v.(type) {
	case []any:
		photos := make(entities.PhotoList, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, ErrInvalidPhotoList
			}
			photos = append(photos, s)
		}
		return photos, nil
	case []string:
		return entities.PhotoList(x), nil
	case string:
		photos, err := entities.DecodePhotoList(x)
		if err != nil {
			return nil, ErrInvalidPhotoList
		}
		return photos, nil
	}
	return nil, ErrInvalidPhotoList
}
