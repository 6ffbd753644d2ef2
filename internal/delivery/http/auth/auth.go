package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	http_auth_middleware "github.com/cinematch/core/internal/delivery/http/middleware/auth"
	service_auth "github.com/cinematch/core/internal/service/auth"
)

type Controller struct {
	service    *service_auth.Service
	middleware *http_auth_middleware.Middleware
	logger     *slog.Logger
}

func New(
	service *service_auth.Service,
	middleware *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		service:    service,
		middleware: middleware,
		logger:     slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/register", c.register)
	auth.POST("/login", c.login)
	auth.POST("/logout", c.middleware.AuthRequired(), c.logout)
	auth.GET("/me", c.middleware.AuthRequired(), c.me)
}

type CredentialsDTO struct {
	Username string `json:"username" binding:"required" example:"moviebuff"`
	Password string `json:"password" binding:"required" example:"hunter2"`
}

type SessionResponseDTO struct {
	Token string `json:"token"`
}

type ProfileResponseDTO struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// @Summary Register a new account
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body CredentialsDTO true "Desired username and password"
// @Success 201 {object} SessionResponseDTO "Account created, session started"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 409 {object} http_common.ErrorResponse "Username already taken"
// @Router /auth/register [post]
func (c *Controller) register(ctx *gin.Context) {
	var req CredentialsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	if _, err := c.service.Register(ctx.Request.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service_auth.ErrUsernameTaken):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{
				Message: "username already taken",
			})
		case errors.Is(err, service_auth.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
		default:
			c.logger.Error("failed to register", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	token, err := c.service.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.logger.Error("failed to start session after register", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, SessionResponseDTO{Token: token})
}

// @Summary Sign in
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body CredentialsDTO true "Username and password"
// @Success 200 {object} SessionResponseDTO "Session token"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 403 {object} http_common.ErrorResponse "Wrong username or password"
// @Router /auth/login [post]
func (c *Controller) login(ctx *gin.Context) {
	var req CredentialsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	token, err := c.service.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service_auth.ErrInvalidCredentials) {
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "wrong username or password",
			})
			return
		}
		c.logger.Error("failed to login", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, SessionResponseDTO{Token: token})
}

// @Summary End the current session
// @Tags Auth operations
// @Success 204
// @Router /auth/logout [post]
func (c *Controller) logout(ctx *gin.Context) {
	if err := c.service.Logout(http_auth_middleware.BearerToken(ctx)); err != nil {
		c.logger.Error("failed to logout", slog.String("error", err.Error()))
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Current profile
// @Tags Auth operations
// @Produce json
// @Success 200 {object} ProfileResponseDTO
// @Failure 401 {object} http_common.ErrorResponse "Not signed in"
// @Router /auth/me [get]
func (c *Controller) me(ctx *gin.Context) {
	user, ok := http_auth_middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "sign in required",
		})
		return
	}

	ctx.JSON(http.StatusOK, ProfileResponseDTO{
		UserID:   user.ID.String(),
		Username: user.Username,
	})
}
