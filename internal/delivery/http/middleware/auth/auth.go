package http_auth_middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	http_common "github.com/cinematch/core/internal/delivery/http/common"
	"github.com/cinematch/core/internal/model"
	service_auth "github.com/cinematch/core/internal/service/auth"
)

const userKey = "auth_user"

type Middleware struct {
	service *service_auth.Service
	logger  *slog.Logger
}

func New(
	service *service_auth.Service,
) *Middleware {
	return &Middleware{
		service: service,
		logger:  slog.Default(),
	}
}

// AuthRequired resolves the bearer token into a user and aborts with 401
// otherwise. Mutating actions never reach their handler unauthenticated.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := BearerToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "sign in required",
			})
			ctx.Abort()
			return
		}

		user, err := m.service.Resolve(ctx.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service_auth.ErrNotAuthenticated) {
				m.logger.Error("failed to resolve session", slog.String("error", err.Error()))
			}
			ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
				Message: "sign in required",
			})
			ctx.Abort()
			return
		}

		ctx.Set(userKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user placed into the context by AuthRequired.
func CurrentUser(ctx *gin.Context) (model.User, bool) {
	v, ok := ctx.Get(userKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// BearerToken extracts the session token from the Authorization header.
func BearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}
