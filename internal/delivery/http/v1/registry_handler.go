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

type RegistryHandler struct {
	registryUC domain.RegistryUsecase
}

// NewRegistryHandler registers the top-level registry routes
func NewRegistryHandler(public, protected *gin.RouterGroup, registryUC domain.RegistryUsecase) {
	handler := &RegistryHandler{registryUC: registryUC}

	protected.POST("/companies", handler.CreateCompanyProfile)

	public.GET("/companies", handler.ListCompanyProfiles)
	public.GET("/companies/:id", handler.GetCompanyProfile)
	public.GET("/owners/:identity/companies", handler.ListByOwner)
}

// CreateCompanyProfileRequest is the request payload for registering a company
type CreateCompanyProfileRequest struct {
	CompanyName string `json:"company_name"`
	WebsiteURL  string `json:"website_url"`
	LogoCID     string `json:"logo_cid"`
}

// CreateCompanyProfile godoc
// @Summary      Register a company profile
// @Description  Creates a company profile owned by the calling identity. No fee required.
// @Tags         registry
// @Accept       json
// @Produce      json
// @Param        body  body      CreateCompanyProfileRequest  true  "Profile data"
// @Success      201   {object}  response.Response{data=domain.CompanyProfile}
// @Failure      401   {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *RegistryHandler) CreateCompanyProfile(c *gin.Context) {
	caller := c.GetString(string(domain.KeyIdentity))

	var req CreateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.registryUC.CreateCompanyProfile(c, caller, req.CompanyName, req.WebsiteURL, req.LogoCID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company profile created", profile)
}

// GetCompanyProfile godoc
// @Summary      Get a company profile
// @Tags         registry
// @Produce      json
// @Param        id   path      string  true  "Profile reference"
// @Success      200  {object}  response.Response{data=domain.CompanyProfile}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *RegistryHandler) GetCompanyProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid profile reference"))
		return
	}

	profile, err := h.registryUC.GetCompanyProfile(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile retrieved", profile)
}

// ListCompanyProfiles godoc
// @Summary      List registered companies
// @Tags         registry
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response{data=[]domain.CompanyProfile}
// @Router       /companies [get]
func (h *RegistryHandler) ListCompanyProfiles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	profiles, total, err := h.registryUC.ListCompanyProfiles(c, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profiles retrieved", gin.H{
		"profiles": profiles,
		"total":    total,
	})
}

// ListByOwner godoc
// @Summary      List companies registered by an identity
// @Tags         registry
// @Produce      json
// @Param        identity  path      string  true  "Owner identity"
// @Success      200       {object}  response.Response{data=[]domain.CompanyProfile}
// @Router       /owners/{identity}/companies [get]
func (h *RegistryHandler) ListByOwner(c *gin.Context) {
	profiles, err := h.registryUC.ListCompanyProfilesByOwner(c, c.Param("identity"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profiles retrieved", profiles)
}
