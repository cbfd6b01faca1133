package v1

import (
	"context"
	"net/http"

	"decentralhire-backend/internal/delivery/http/response"
	"decentralhire-backend/internal/domain"
	"decentralhire-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CompanyProfileHandler struct {
	profileUC domain.CompanyProfileUsecase
}

// NewCompanyProfileHandler registers the owner-gated profile routes and the
// public posting listing.
func NewCompanyProfileHandler(public, protected *gin.RouterGroup, profileUC domain.CompanyProfileUsecase) {
	handler := &CompanyProfileHandler{profileUC: profileUC}

	protected.PATCH("/companies/:id/name", handler.SetCompanyName)
	protected.PATCH("/companies/:id/website", handler.SetWebsiteURL)
	protected.PATCH("/companies/:id/logo", handler.SetLogoCID)
	protected.POST("/companies/:id/postings", handler.CreateJobPosting)

	public.GET("/companies/:id/postings/active", handler.ListActiveJobPostings)
}

type updateFieldRequest struct {
	Value string `json:"value"`
}

func (h *CompanyProfileHandler) profileID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid profile reference"))
		return uuid.Nil, false
	}
	return id, true
}

// SetCompanyName godoc
// @Summary      Update a company's display name
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Profile reference"
// @Param        body  body      updateFieldRequest  true  "New name"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /companies/{id}/name [patch]
// @Security     BearerAuth
func (h *CompanyProfileHandler) SetCompanyName(c *gin.Context) {
	h.updateField(c, h.profileUC.SetCompanyName, "Company name updated")
}

// SetWebsiteURL godoc
// @Summary      Update a company's website URL
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Profile reference"
// @Param        body  body      updateFieldRequest  true  "New URL"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /companies/{id}/website [patch]
// @Security     BearerAuth
func (h *CompanyProfileHandler) SetWebsiteURL(c *gin.Context) {
	h.updateField(c, h.profileUC.SetWebsiteURL, "Website URL updated")
}

// SetLogoCID godoc
// @Summary      Update a company's logo content identifier
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Profile reference"
// @Param        body  body      updateFieldRequest  true  "New logo CID"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /companies/{id}/logo [patch]
// @Security     BearerAuth
func (h *CompanyProfileHandler) SetLogoCID(c *gin.Context) {
	h.updateField(c, h.profileUC.SetLogoCID, "Company logo updated")
}

type updateFieldFn func(ctx context.Context, caller string, profileID uuid.UUID, value string) error

func (h *CompanyProfileHandler) updateField(c *gin.Context, update updateFieldFn, message string) {
	id, ok := h.profileID(c)
	if !ok {
		return
	}

	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	caller := c.GetString(string(domain.KeyIdentity))
	if err := update(c, caller, id, req.Value); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, message, nil)
}

// CreateJobPosting godoc
// @Summary      Create a job posting under a company profile
// @Description  Owner only. The attached payment must cover the posting fee.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Profile reference"
// @Param        body  body      domain.CreateJobPostingInput  true  "Posting data"
// @Success      201   {object}  response.Response{data=domain.JobPosting}
// @Failure      402   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /companies/{id}/postings [post]
// @Security     BearerAuth
func (h *CompanyProfileHandler) CreateJobPosting(c *gin.Context) {
	id, ok := h.profileID(c)
	if !ok {
		return
	}

	var input domain.CreateJobPostingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	caller := c.GetString(string(domain.KeyIdentity))
	posting, err := h.profileUC.CreateJobPosting(c, caller, id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posting created", posting)
}

// ListActiveJobPostings godoc
// @Summary      List a company's active postings
// @Description  Returns postings that still have open hiring capacity.
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Profile reference"
// @Success      200  {object}  response.Response{data=[]domain.JobPosting}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id}/postings/active [get]
func (h *CompanyProfileHandler) ListActiveJobPostings(c *gin.Context) {
	id, ok := h.profileID(c)
	if !ok {
		return
	}

	postings, err := h.profileUC.ListActiveJobPostings(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Active job postings retrieved", postings)
}
