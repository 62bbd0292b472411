package handlers

import (
	"errors"
	"net/http"

	"afclean/internal/usecase"
	"afclean/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errJobNotFound    = pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	errEntryNotFound  = pkg.NewDomainErrorSimple("LEDGER_ENTRY_NOT_FOUND", "Ledger entry not found", http.StatusNotFound)
	errSettingMissing = pkg.NewDomainErrorSimple("SETTING_NOT_FOUND", "Setting not found", http.StatusNotFound)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidLedgerID), errors.Is(err, usecase.ErrInvalidSettingKey):
		return pkg.NewDomainErrorSimple("INVALID_ID", "Invalid identifier", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobInput), errors.Is(err, usecase.ErrInvalidLedgerEntry):
		return pkg.NewDomainError("INVALID_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyUpdate):
		return pkg.NewDomainErrorSimple("EMPTY_UPDATE", "No updates provided", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownField):
		return pkg.NewDomainError("UNKNOWN_FIELD", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFieldValue):
		return pkg.NewDomainError("INVALID_FIELD_VALUE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhotoPhase):
		return pkg.NewDomainErrorSimple("INVALID_PHOTO_PHASE", "Photo phase must be before or after", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyPhoto):
		return pkg.NewDomainErrorSimple("EMPTY_PHOTO", "Photo image is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPhotoIndexOutOfRange):
		return pkg.NewDomainErrorSimple("PHOTO_INDEX_OUT_OF_RANGE", "Photo index out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return errJobNotFound
	case errors.Is(err, usecase.ErrLedgerEntryNotFound):
		return errEntryNotFound
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrJobAlreadyCompleted):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_COMPLETED", "Job already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrIncompleteEvidence):
		return pkg.NewDomainErrorSimple("INCOMPLETE_EVIDENCE", "At least one after photo is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingSignature):
		return pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Client signature is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLedgerWriteFailed):
		return pkg.NewDomainError("LEDGER_WRITE_FAILED", "Job completed but the ledger entry was not recorded", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPersistenceUnavailable):
		return pkg.NewDomainError("PERSISTENCE_UNAVAILABLE", "Storage unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
