package http_discover

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	"github.com/cinematch/core/internal/model"
	usecase_discovery "github.com/cinematch/core/internal/usecase/discovery"
	usecase_proxy "github.com/cinematch/core/internal/usecase/proxy"
)

// DisplayLimit caps how many titles a discovery page shows. Presentation
// only; the cache keeps the full upstream page.
const DisplayLimit = 18

type MediaListResponseDTO struct {
	Results []model.MediaSummary `json:"results"`
	Total   int                  `json:"total"`
}

type GenreListResponseDTO struct {
	Genres []model.Genre `json:"genres"`
}

type Controller struct {
	uc     *usecase_discovery.Usecase
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_discovery.Usecase, opts ...ControllerOption) *Controller {
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
	router.GET("/discover", c.discover)
	router.GET("/genres", c.genres)
}

// @Summary Discover titles
// @Description Serves the top titles for a filter combination, cached for 24h
// @Tags Discovery operations
// @Produce json
// @Param media_type query string true "movie or tv"
// @Param type query string false "top_rated or newest" default(top_rated)
// @Param genre query int false "Genre id"
// @Param decade query string false "Decade start year, e.g. 1990"
// @Param language query string false "Original-language ISO code"
// @Success 200 {object} MediaListResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Invalid filter combination"
// @Failure 502 {object} http_common.ErrorResponse "Upstream failure"
// @Router /discover [get]
func (c *Controller) discover(ctx *gin.Context) {
	filter, err := filterFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	results, err := c.uc.Discover(ctx.Request.Context(), filter)
	if err != nil {
		c.logger.Error("discovery failed",
			slog.String("cache_key", filter.CacheKey()),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, usecase_proxy.ErrInvalidRequest) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: err.Error(),
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "failed to reach the movie catalog",
		})
		return
	}

	if len(results) > DisplayLimit {
		results = results[:DisplayLimit]
	}

	ctx.JSON(http.StatusOK, MediaListResponseDTO{
		Results: results,
		Total:   len(results),
	})
}

// @Summary Genre list
// @Tags Discovery operations
// @Produce json
// @Param media_type query string true "movie or tv"
// @Success 200 {object} GenreListResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Unknown media type"
// @Failure 502 {object} http_common.ErrorResponse "Upstream failure"
// @Router /genres [get]
func (c *Controller) genres(ctx *gin.Context) {
	kind := model.MediaKind(ctx.Query("media_type"))
	if !kind.Valid() {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "media_type must be movie or tv",
		})
		return
	}

	genres, err := c.uc.Genres(ctx.Request.Context(), kind)
	if err != nil {
		c.logger.Error("genre load failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "failed to reach the movie catalog",
		})
		return
	}

	ctx.JSON(http.StatusOK, GenreListResponseDTO{Genres: genres})
}

func filterFromQuery(ctx *gin.Context) (model.FilterState, error) {
	kind := model.MediaKind(ctx.Query("media_type"))
	if !kind.Valid() {
		return model.FilterState{}, errors.New("media_type must be movie or tv")
	}

	query := model.QueryType(ctx.DefaultQuery("type", string(model.QueryTopRated)))
	if !query.Valid() {
		return model.FilterState{}, errors.New("type must be top_rated or newest")
	}

	filter := model.FilterState{
		Kind:     kind,
		Query:    query,
		Decade:   ctx.Query("decade"),
		Language: ctx.Query("language"),
	}

	if raw := ctx.Query("genre"); raw != "" {
		genreID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return model.FilterState{}, errors.New("genre must be numeric")
		}
		filter.GenreID = &genreID
	}

	return filter, nil
}
