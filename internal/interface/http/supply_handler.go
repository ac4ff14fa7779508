package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/disastercare/relief-hub/internal/application"
	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
	"github.com/disastercare/relief-hub/pkg/response"
	"github.com/disastercare/relief-hub/pkg/validation"
)

type SupplyHandler struct {
	Svc    *application.SupplyService
	Logger *logrus.Logger
}

func NewSupplyHandler(svc *application.SupplyService, logger *logrus.Logger) *SupplyHandler {
	return &SupplyHandler{Svc: svc, Logger: logger}
}

type createSupplyRequest struct {
	Title       string  `json:"title" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	Amount      float64 `json:"amount" binding:"omitempty,gte=0"`
	Image       string  `json:"image" binding:"omitempty,url"`
	DonatedBy   string  `json:"donatedBy" binding:"omitempty,email"`
}

type appendPostRequest struct {
	Message  string `json:"message" binding:"required"`
	PostedBy string `json:"postedBy" binding:"omitempty,email"`
}

// Create POST /create-supply
func (h *SupplyHandler) Create(c *gin.Context) {
	var req createSupplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	supply := &entity.Supply{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		Amount:      req.Amount,
		Image:       req.Image,
		DonatedBy:   req.DonatedBy,
	}
	id, err := h.Svc.Create(c.Request.Context(), supply)
	if err != nil {
		h.Logger.WithError(err).Error("create supply failed")
		response.Fail(c, http.StatusInternalServerError, "failed to create supply", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

// List GET /supplies?limit=
func (h *SupplyHandler) List(c *gin.Context) {
	var limit int64
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			response.Fail(c, http.StatusBadRequest, "limit must be a non-negative integer", nil)
			return
		}
		limit = n
	}
	supplies, err := h.Svc.List(c.Request.Context(), limit)
	if err != nil {
		h.Logger.WithError(err).Error("list supplies failed")
		response.Fail(c, http.StatusInternalServerError, "failed to list supplies", nil)
		return
	}
	c.JSON(http.StatusOK, supplies)
}

// Get GET /supply/:id and GET /supplies/:id
func (h *SupplyHandler) Get(c *gin.Context) {
	id := c.Param("id")
	supply, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "get supply failed")
		return
	}
	c.JSON(http.StatusOK, supply)
}

// AppendPost PATCH /supply/:id
func (h *SupplyHandler) AppendPost(c *gin.Context) {
	id := c.Param("id")
	var req appendPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.AppendPost(c.Request.Context(), id, entity.SupplyPost{
		Message:  req.Message,
		PostedBy: req.PostedBy,
	})
	if err != nil {
		h.storeError(c, err, "append post failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

// Leaderboard GET /leaderboard
func (h *SupplyHandler) Leaderboard(c *gin.Context) {
	entries, err := h.Svc.Leaderboard(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("leaderboard failed")
		response.Fail(c, http.StatusInternalServerError, "failed to build leaderboard", nil)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Delete DELETE /delete-supply/:id
func (h *SupplyHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err, "delete supply failed")
		return
	}
	// deleting an unknown id is not an error, the count says so
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}

// Search GET /supplies/search?q=&size=
func (h *SupplyHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Fail(c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("supply search failed")
		response.Fail(c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	c.JSON(http.StatusOK, hits)
}

func (h *SupplyHandler) storeError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		response.Fail(c, http.StatusBadRequest, "invalid supply id", nil)
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, "supply not found", nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Fail(c, http.StatusInternalServerError, "store operation failed", nil)
	}
}
