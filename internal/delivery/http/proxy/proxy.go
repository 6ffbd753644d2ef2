package http_proxy

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinematch/core/internal/model"
	usecase_proxy "github.com/cinematch/core/internal/usecase/proxy"
)

// ProxyRequestDTO mirrors the metadata-proxy wire format: a filter/intent
// description with every dimension optional except the media type.
type ProxyRequestDTO struct {
	MediaType string `json:"mediaType" binding:"required" example:"movie"`
	Genre     *int64 `json:"genre,omitempty" example:"28"`
	Decade    string `json:"decade,omitempty" example:"1990"`
	Action    string `json:"action,omitempty" example:"get_genres"`
	Type      string `json:"type,omitempty" example:"top_rated"`
	Language  string `json:"language,omitempty" example:"ta"`
}

type ResultsResponseDTO struct {
	Results []model.MediaSummary `json:"results"`
}

type GenresResponseDTO struct {
	Genres []model.Genre `json:"genres"`
}

type ProxyErrorDTO struct {
	Error string `json:"error"`
}

type Controller struct {
	uc     *usecase_proxy.Usecase
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_proxy.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/proxy", c.proxy)
}

// @Summary Metadata proxy
// @Description Translates a filter/intent description into upstream metadata queries
// @Tags Discovery operations
// @Accept json
// @Produce json
// @Param request body ProxyRequestDTO true "Filter/intent description"
// @Success 200 {object} ResultsResponseDTO "Result list (or genre list for action=get_genres)"
// @Failure 400 {object} ProxyErrorDTO "Parse error or upstream failure"
// @Router /proxy [post]
func (c *Controller) proxy(ctx *gin.Context) {
	var req ProxyRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid proxy request", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ProxyErrorDTO{Error: err.Error()})
		return
	}

	query := model.QueryNewest
	if req.Type == string(model.QueryTopRated) {
		query = model.QueryTopRated
	}

	resp, err := c.uc.Execute(ctx.Request.Context(), usecase_proxy.Request{
		Action:   req.Action,
		Kind:     model.MediaKind(req.MediaType),
		Query:    query,
		GenreID:  req.Genre,
		Decade:   req.Decade,
		Language: req.Language,
	})
	if err != nil {
		// Parse errors and upstream unavailability share the 400 path; the
		// upstream is surfaced, never retried.
		c.logger.Warn("proxy request failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, ProxyErrorDTO{Error: err.Error()})
		return
	}

	if req.Action == usecase_proxy.ActionGetGenres {
		ctx.JSON(http.StatusOK, GenresResponseDTO{Genres: resp.Genres})
		return
	}
	ctx.JSON(http.StatusOK, ResultsResponseDTO{Results: resp.Results})
}
