package http_watchlist

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	http_auth_middleware "github.com/cinematch/core/internal/delivery/http/middleware/auth"
	"github.com/cinematch/core/internal/model"
	usecase_watchlist "github.com/cinematch/core/internal/usecase/watchlist"
)

// AddItemRequestDTO carries the normalized summary of the title to save.
type AddItemRequestDTO struct {
	ExternalID  int64   `json:"external_id" binding:"required" example:"603"`
	Title       string  `json:"title" binding:"required" example:"The Matrix"`
	PosterPath  string  `json:"poster_path" example:"/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"`
	VoteAverage float64 `json:"vote_average" example:"8.2"`
	Overview    string  `json:"overview" example:"A computer hacker learns..."`
	ReleaseDate string  `json:"release_date" example:"1999-03-31"`
}

type AddItemResponseDTO struct {
	Status string `json:"status"`
}

type WatchlistItemDTO struct {
	ExternalID  int64   `json:"external_id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
}

type WatchlistResponseDTO struct {
	Items []WatchlistItemDTO `json:"items"`
	Total int                `json:"total"`
}

func ConvertFromItem(item model.WatchlistItem) WatchlistItemDTO {
	return WatchlistItemDTO{
		ExternalID:  item.ExternalID,
		Title:       item.Title,
		PosterPath:  item.PosterPath,
		VoteAverage: item.VoteAverage,
		Overview:    item.Overview,
		ReleaseDate: item.ReleaseDate,
	}
}

func ConvertFromItemList(items []model.WatchlistItem) []WatchlistItemDTO {
	dtos := make([]WatchlistItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ConvertFromItem(item)
	}
	return dtos
}

type Controller struct {
	uc         *usecase_watchlist.Usecase
	middleware *http_auth_middleware.Middleware
	logger     *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	uc *usecase_watchlist.Usecase,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:         uc,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	watchlist := router.Group("/watchlist", c.middleware.AuthRequired())
	watchlist.POST("", c.add)
	watchlist.GET("", c.list)
	watchlist.DELETE("/:external_id", c.remove)
}

// @Summary Save a title to the watchlist
// @Description Idempotent on external id: saving an already saved title reports already_exists
// @Tags Watchlist operations
// @Accept json
// @Produce json
// @Param request body AddItemRequestDTO true "Title to save"
// @Success 200 {object} AddItemResponseDTO "Already present; nothing changed"
// @Success 201 {object} AddItemResponseDTO "Saved"
// @Failure 400 {object} http_common.ErrorResponse "Invalid request body"
// @Failure 401 {object} http_common.ErrorResponse "Sign in required"
// @Router /watchlist [post]
func (c *Controller) add(ctx *gin.Context) {
	user, ok := http_auth_middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "sign in required"})
		return
	}

	var req AddItemRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request body",
		})
		return
	}

	summary := model.MediaSummary{
		ExternalID:  req.ExternalID,
		Title:       req.Title,
		PosterPath:  req.PosterPath,
		VoteAverage: req.VoteAverage,
		Overview:    req.Overview,
		ReleaseDate: req.ReleaseDate,
	}

	if err := c.uc.Add(ctx.Request.Context(), user.ID, summary); err != nil {
		switch {
		case errors.Is(err, usecase_watchlist.ErrAlreadyInWatchlist):
			// A notice, not a failure.
			ctx.JSON(http.StatusOK, AddItemResponseDTO{Status: "already_exists"})
		case errors.Is(err, usecase_watchlist.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
		default:
			c.logger.Error("failed to add watchlist item",
				slog.String("error", err.Error()),
				slog.Int64("external_id", req.ExternalID),
			)
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, AddItemResponseDTO{Status: "added"})
}

// @Summary List the caller's watchlist
// @Tags Watchlist operations
// @Produce json
// @Success 200 {object} WatchlistResponseDTO
// @Failure 401 {object} http_common.ErrorResponse "Sign in required"
// @Router /watchlist [get]
func (c *Controller) list(ctx *gin.Context) {
	user, ok := http_auth_middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "sign in required"})
		return
	}

	items, err := c.uc.List(ctx.Request.Context(), user.ID)
	if err != nil {
		c.logger.Error("failed to load watchlist", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, WatchlistResponseDTO{
		Items: ConvertFromItemList(items),
		Total: len(items),
	})
}

// @Summary Remove a title from the watchlist
// @Description Removing a title that is not on the list succeeds and changes nothing
// @Tags Watchlist operations
// @Produce json
// @Param external_id path int true "External title id"
// @Success 204 "Removed (or was never present)"
// @Failure 400 {object} http_common.ErrorResponse "Invalid external id"
// @Failure 401 {object} http_common.ErrorResponse "Sign in required"
// @Router /watchlist/{external_id} [delete]
func (c *Controller) remove(ctx *gin.Context) {
	user, ok := http_auth_middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "sign in required"})
		return
	}

	externalID, err := strconv.ParseInt(ctx.Param("external_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid external id",
		})
		return
	}

	if err := c.uc.Remove(ctx.Request.Context(), user.ID, externalID); err != nil {
		c.logger.Error("failed to remove watchlist item",
			slog.String("error", err.Error()),
			slog.Int64("external_id", externalID),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
