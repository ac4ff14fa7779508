package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/disastercare/relief-hub/internal/application"
	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/pkg/response"
	"github.com/disastercare/relief-hub/pkg/validation"
)

type VolunteerHandler struct {
	Svc    *application.VolunteerService
	Logger *logrus.Logger
}

func NewVolunteerHandler(svc *application.VolunteerService, logger *logrus.Logger) *VolunteerHandler {
	return &VolunteerHandler{Svc: svc, Logger: logger}
}

type createVolunteerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Create POST /create-volunteer
// A duplicate email gets exactly one response, a 400.
func (h *VolunteerHandler) Create(c *gin.Context) {
	var req createVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id, err := h.Svc.Create(c.Request.Context(), &entity.Volunteer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusBadRequest, "Volunteer already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("create volunteer failed")
		response.Fail(c, http.StatusInternalServerError, "failed to create volunteer", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}
