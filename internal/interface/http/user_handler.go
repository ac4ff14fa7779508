package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/disastercare/relief-hub/internal/application"
	"github.com/disastercare/relief-hub/internal/interface/middleware"
	"github.com/disastercare/relief-hub/pkg/response"
	"github.com/disastercare/relief-hub/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register POST /api/v1/register
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusBadRequest, "User already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("register failed")
		response.Fail(c, http.StatusInternalServerError, "registration failed", nil)
		return
	}
	response.OK(c, http.StatusCreated, "User registered successfully")
}

// Login POST /api/v1/login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	token, _, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// unknown email and bad password look the same on purpose
			response.Fail(c, http.StatusUnauthorized, "Invalid email or password", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Fail(c, http.StatusInternalServerError, "login failed", nil)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Success: true, Message: "Login successful", Token: token})
}

// List GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list users failed")
		response.Fail(c, http.StatusInternalServerError, "failed to list users", nil)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByEmail GET /api/v1/users/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	u, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get user failed")
		response.Fail(c, http.StatusInternalServerError, "failed to get user", nil)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UploadAvatar POST /api/v1/users/avatar (bearer-protected, multipart)
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	email := c.GetString(middleware.CtxEmailKey)
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), email, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("email", email).Error("avatar upload failed")
		response.Fail(c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "image": url})
}
