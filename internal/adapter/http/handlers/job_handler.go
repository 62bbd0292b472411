package handlers

import (
	"net/http"
	"strconv"

	request "afclean/internal/adapter/http/dto/request"
	response "afclean/internal/adapter/http/dto/response"
	"afclean/internal/domain/entities"
	"afclean/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// JobHandler serves the job lifecycle and its photo evidence.

type JobHandler struct {
	jobs     usecase.IJobUseCase
	evidence usecase.IEvidenceUseCase
}

func NewJobHandler(jobs usecase.IJobUseCase, evidence usecase.IEvidenceUseCase) *JobHandler {
	return &JobHandler{jobs: jobs, evidence: evidence}
}

// ListJobs godoc
// @Summary  List jobs, most recently scheduled first
// @Tags     jobs
// @Produce  json
// @Success  200 {array} response.JobResponse
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// CreateJob godoc
// @Summary  Schedule a job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    job body request.CreateJobRequest true "Job"
// @Success  201 {object} response.JobResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	in, err := payload.ResolveInput()
	if err != nil {
		abortWith(c, mapError(err))
		return
	}

	job, err := h.jobs.CreateJob(c.Request.Context(), in)
	if err != nil {
		logrus.WithError(err).Warn("[job][handler] create failed")
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob godoc
// @Summary  Get a job
// @Tags     jobs
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} response.JobResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// UpdateJob godoc
// @Summary  Patch whitelisted job fields
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} response.ChangesResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	fields, err := request.NormalizeJobPatch(fields)
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	changed, err := h.jobs.UpdateJob(c.Request.Context(), id, fields)
	if err != nil {
		logrus.WithField("job_id", id).WithError(err).Warn("[job][handler] update failed")
		abortWith(c, mapError(err))
		return
	}
	if changed == 0 {
		abortWith(c, errJobNotFound)
		return
	}
	c.JSON(http.StatusOK, response.ChangesResponse{Changes: changed})
}

// DeleteJob godoc
// @Summary  Delete a job
// @Tags     jobs
// @Produce  json
// @Param    id path string true "Job ID"
// @Success  200 {object} response.ChangesResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	changed, err := h.jobs.DeleteJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	if changed == 0 {
		abortWith(c, errJobNotFound)
		return
	}
	c.JSON(http.StatusOK, response.ChangesResponse{Changes: changed})
}

// AddPhoto godoc
// @Summary  Append a before/after photo; the first photo starts the job
// @Tags     evidence
// @Accept   json
// @Produce  json
// @Param    id    path string true "Job ID"
// @Param    phase path string true "before or after"
// @Param    photo body request.AddPhotoRequest true "Photo"
// @Success  201 {object} response.PhotosResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /jobs/{id}/photos/{phase} [post]
func (h *JobHandler) AddPhoto(c *gin.Context) {
	id, phase := c.Param("id"), entities.PhotoPhase(c.Param("phase"))
	var payload request.AddPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	photos, err := h.evidence.AddPhoto(c.Request.Context(), id, phase, payload.Image)
	if err != nil {
		logrus.WithFields(logrus.Fields{"job_id": id, "phase": phase}).WithError(err).Warn("[evidence][handler] add failed")
		abortWith(c, mapError(err))
		return
	}
	parsed, _ := entities.ParsePhotoPhase(string(phase))
	c.JSON(http.StatusCreated, response.FromPhotos(id, parsed, photos))
}

// RemovePhoto godoc
// @Summary  Remove a photo by position
// @Tags     evidence
// @Produce  json
// @Param    id    path string true "Job ID"
// @Param    phase path string true "before or after"
// @Param    index path int    true "Zero-based position"
// @Success  200 {object} response.PhotosResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /jobs/{id}/photos/{phase}/{index} [delete]
func (h *JobHandler) RemovePhoto(c *gin.Context) {
	id, phase := c.Param("id"), entities.PhotoPhase(c.Param("phase"))
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	photos, err := h.evidence.RemovePhoto(c.Request.Context(), id, phase, index)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	parsed, _ := entities.ParsePhotoPhase(string(phase))
	c.JSON(http.StatusOK, response.FromPhotos(id, parsed, photos))
}

// Finalize godoc
// @Summary  Complete a job with the client signature and record the income
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Param    id   path string true "Job ID"
// @Param    body body request.FinalizeRequest true "Finalize"
// @Success  200 {object} response.FinalizeResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /jobs/{id}/finalize [post]
func (h *JobHandler) Finalize(c *gin.Context) {
	id := c.Param("id")
	var payload request.FinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	logrus.WithField("job_id", id).Info("[job][handler] finalize start")

	res, err := h.jobs.Finalize(c.Request.Context(), id, payload.ResolveInput())
	if err != nil {
		logrus.WithField("job_id", id).WithError(err).Warn("[job][handler] finalize failed")
		abortWith(c, mapError(err))
		return
	}
	logrus.WithFields(logrus.Fields{"job_id": id, "entry_id": res.LedgerEntryID}).Info("[job][handler] finalize success")
	c.JSON(http.StatusOK, response.FromFinalizeResult(res))
}
