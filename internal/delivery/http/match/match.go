package http_match

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	http_auth_middleware "github.com/cinematch/core/internal/delivery/http/middleware/auth"
	http_watchlist "github.com/cinematch/core/internal/delivery/http/watchlist"
	service_suggest "github.com/cinematch/core/internal/service/suggest"
	usecase_match "github.com/cinematch/core/internal/usecase/match"
)

type MatchesResponseDTO struct {
	Matches []http_watchlist.WatchlistItemDTO `json:"matches"`
	Total   int                               `json:"total"`
}

type SuggestionsResponseDTO struct {
	Usernames []string `json:"usernames"`
}

type Controller struct {
	uc         *usecase_match.Usecase
	suggest    *service_suggest.Service
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
	uc *usecase_match.Usecase,
	suggest *service_suggest.Service,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		uc:         uc,
		suggest:    suggest,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/matches/:username", c.middleware.AuthRequired(), c.matches)
	router.GET("/users/suggestions", c.middleware.AuthRequired(), c.suggestions)
}

// @Summary Titles both watchlists share
// @Description Intersects the caller's watchlist with the named partner's, keyed by external id
// @Tags Match operations
// @Produce json
// @Param username path string true "Partner username"
// @Success 200 {object} MatchesResponseDTO "Common titles, from the partner's stored rows"
// @Failure 400 {object} http_common.ErrorResponse "Matching against yourself"
// @Failure 401 {object} http_common.ErrorResponse "Sign in required"
// @Failure 404 {object} http_common.ErrorResponse "Partner not found"
// @Router /matches/{username} [get]
func (c *Controller) matches(ctx *gin.Context) {
	user, ok := http_auth_middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "sign in required"})
		return
	}

	matches, err := c.uc.FindMatchesByUsername(ctx.Request.Context(), user.ID, ctx.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, usecase_match.ErrPartnerNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "no such user",
			})
		case errors.Is(err, usecase_match.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
		default:
			c.logger.Error("failed to find matches", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, MatchesResponseDTO{
		Matches: http_watchlist.ConvertFromItemList(matches),
		Total:   len(matches),
	})
}

// @Summary Username suggestions
// @Description Case-insensitive prefix search over profiles, debounced per session; a newer query supersedes the pending one
// @Tags Match operations
// @Produce json
// @Param q query string true "Username prefix"
// @Success 200 {object} SuggestionsResponseDTO
// @Failure 401 {object} http_common.ErrorResponse "Sign in required"
// @Router /users/suggestions [get]
func (c *Controller) suggestions(ctx *gin.Context) {
	user, ok := http_auth_middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "sign in required"})
		return
	}

	prefix := ctx.Query("q")
	sessionKey := http_auth_middleware.BearerToken(ctx)

	users, err := c.suggest.Suggest(ctx.Request.Context(), sessionKey, user.ID, prefix)
	if err != nil {
		if errors.Is(err, service_suggest.ErrSuperseded) {
			// A newer query from the same session took over; this response
			// must not overwrite fresher state client-side.
			ctx.JSON(http.StatusOK, SuggestionsResponseDTO{Usernames: []string{}})
			return
		}
		c.logger.Error("suggestion lookup failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	usernames := make([]string, len(users))
	for i, u := range users {
		usernames[i] = u.Username
	}

	ctx.JSON(http.StatusOK, SuggestionsResponseDTO{Usernames: usernames})
}
