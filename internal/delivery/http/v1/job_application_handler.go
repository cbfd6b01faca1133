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

type JobApplicationHandler struct {
	applicationUC domain.JobApplicationUsecase
}

// NewJobApplicationHandler registers the lifecycle transition routes. Each
// transition is its own endpoint so role checks stay per-route.
func NewJobApplicationHandler(public, protected *gin.RouterGroup, applicationUC domain.JobApplicationUsecase) {
	handler := &JobApplicationHandler{applicationUC: applicationUC}

	public.GET("/applications/:id", handler.GetApplication)

	protected.POST("/applications/:id/offer", handler.SendOffer)
	protected.POST("/applications/:id/accept", handler.AcceptOffer)
	protected.POST("/applications/:id/decline", handler.DeclineOffer)
	protected.POST("/applications/:id/hire", handler.ConfirmHire)
}

func (h *JobApplicationHandler) applicationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application reference"))
		return uuid.Nil, false
	}
	return id, true
}

type transitionFn func(ctx context.Context, caller string, applicationID uuid.UUID) error

func (h *JobApplicationHandler) transition(c *gin.Context, run transitionFn, message string) {
	id, ok := h.applicationID(c)
	if !ok {
		return
	}

	caller := c.GetString(string(domain.KeyIdentity))
	if err := run(c, caller, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, message, nil)
}

// GetApplication godoc
// @Summary      Get a job application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application reference"
// @Success      200  {object}  response.Response{data=domain.JobApplication}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
func (h *JobApplicationHandler) GetApplication(c *gin.Context) {
	id, ok := h.applicationID(c)
	if !ok {
		return
	}

	app, err := h.applicationUC.GetApplication(c, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job application retrieved", app)
}

// SendOffer godoc
// @Summary      Send an offer on an application
// @Description  Posting owner only. Valid from InProgress.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application reference"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/offer [post]
// @Security     BearerAuth
func (h *JobApplicationHandler) SendOffer(c *gin.Context) {
	h.transition(c, h.applicationUC.SendOffer, "Offer sent")
}

// AcceptOffer godoc
// @Summary      Accept a pending offer
// @Description  Applicant only. Valid from OfferSent.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application reference"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/accept [post]
// @Security     BearerAuth
func (h *JobApplicationHandler) AcceptOffer(c *gin.Context) {
	h.transition(c, h.applicationUC.AcceptOffer, "Offer accepted")
}

// DeclineOffer godoc
// @Summary      Decline a pending offer
// @Description  Applicant only. Valid from OfferSent; terminal.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application reference"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/decline [post]
// @Security     BearerAuth
func (h *JobApplicationHandler) DeclineOffer(c *gin.Context) {
	h.transition(c, h.applicationUC.DeclineOffer, "Offer declined")
}

// ConfirmHire godoc
// @Summary      Confirm a hire on an accepted offer
// @Description  Posting owner only. Valid from OfferAccepted while the posting has open capacity; increments the posting's hired count.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application reference"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications/{id}/hire [post]
// @Security     BearerAuth
func (h *JobApplicationHandler) ConfirmHire(c *gin.Context) {
	h.transition(c, h.applicationUC.ConfirmHire, "Applicant hired")
}
