package v1

import (
	"net/http"
	"strconv"

	"decentralhire-backend/internal/delivery/http/response"
	"decentralhire-backend/internal/domain"
	"decentralhire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobPostingHandler struct {
	postingUC domain.JobPostingUsecase
}

// NewJobPostingHandler registers posting reads, the apply endpoint and the
// owner-gated applicant index.
func NewJobPostingHandler(public, protected *gin.RouterGroup, postingUC domain.JobPostingUsecase) {
	handler := &JobPostingHandler{postingUC: postingUC}

	public.GET("/postings/:id", handler.GetPosting)

	protected.POST("/postings/:id/applications", handler.ApplyForJob)
	protected.GET("/postings/:id/applications", handler.GetReceivedApplications)
	protected.GET("/postings/:id/applications/:identity", handler.GetReceivedApplication)
}

func (h *JobPostingHandler) postingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid posting reference"))
		return uuid.Nil, false
	}
	return id, true
}

// GetPosting godoc
// @Summary      Get a job posting
// @Tags         postings
// @Produce      json
// @Param        id   path      string  true  "Posting reference"
// @Success      200  {object}  response.Response{data=domain.JobPosting}
// @Failure      404  {object}  response.Response
// @Router       /postings/{id} [get]
func (h *JobPostingHandler) GetPosting(c *gin.Context) {
	id, ok := h.postingID(c)
	if !ok {
		return
	}

	posting, err := h.postingUC.GetPosting(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job posting retrieved", posting)
}

// ApplyForJobRequest carries the resume reference and the attached payment.
type ApplyForJobRequest struct {
	ResumeCID     string `json:"resume_cid"`
	PaymentAmount int64  `json:"payment_amount"`
}

// ApplyForJob godoc
// @Summary      Apply to a job posting
// @Description  One application per identity per posting. The attached payment must cover the application fee.
// @Tags         postings
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Posting reference"
// @Param        body  body      ApplyForJobRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.JobApplication}
// @Failure      402   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /postings/{id}/applications [post]
// @Security     BearerAuth
func (h *JobPostingHandler) ApplyForJob(c *gin.Context) {
	id, ok := h.postingID(c)
	if !ok {
		return
	}

	var req ApplyForJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	caller := c.GetString(string(domain.KeyIdentity))
	app, err := h.postingUC.ApplyForJob(c, caller, id, req.ResumeCID, req.PaymentAmount)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job application submitted", app)
}

// GetReceivedApplications godoc
// @Summary      List applicants for a posting
// @Description  Posting owner only. Pages are fixed at 20 entries, selected by offset.
// @Tags         postings
// @Produce      json
// @Param        id      path      string  true   "Posting reference"
// @Param        offset  query     int     false  "Page offset"
// @Success      200     {object}  response.Response{data=[]domain.ApplicationMetadata}
// @Failure      403     {object}  response.Response
// @Router       /postings/{id}/applications [get]
// @Security     BearerAuth
func (h *JobPostingHandler) GetReceivedApplications(c *gin.Context) {
	id, ok := h.postingID(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	caller := c.GetString(string(domain.KeyIdentity))
	entries, err := h.postingUC.GetReceivedApplications(c, caller, id, offset)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Received applications retrieved", entries)
}

// GetReceivedApplication godoc
// @Summary      Look up one applicant's entry for a posting
// @Description  Posting owner, or the applicant looking up their own entry.
// @Tags         postings
// @Produce      json
// @Param        id        path      string  true  "Posting reference"
// @Param        identity  path      string  true  "Applicant identity"
// @Success      200       {object}  response.Response{data=domain.ApplicationMetadata}
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /postings/{id}/applications/{identity} [get]
// @Security     BearerAuth
func (h *JobPostingHandler) GetReceivedApplication(c *gin.Context) {
	id, ok := h.postingID(c)
	if !ok {
		return
	}

	caller := c.GetString(string(domain.KeyIdentity))
	entry, err := h.postingUC.GetReceivedApplication(c, caller, id, c.Param("identity"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Received application retrieved", entry)
}
