package http

import (
	"net/http"
	"strings"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/ports"
	"medmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the auth middleware stores the resolved actor on
// the echo context.
const actorContextKey = "actor"

// AuthMiddleware resolves the bearer token through the access gate and
// injects the actor into the request context. Missing, malformed, expired,
// or forged tokens end the request with 401; ownership and role decisions
// stay with the handlers behind it.
func AuthMiddleware(gate ports.AccessGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			raw := strings.TrimSpace(ctx.Request().Header.Get("Authorization"))
			if raw == "" {
				return unauthenticated(ctx, "missing token")
			}

			parts := strings.SplitN(raw, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthenticated(ctx, "invalid authorization header")
			}

			actor, err := gate.Authenticate(strings.TrimSpace(parts[1]))
			if err != nil {
				return unauthenticated(ctx, "invalid token")
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func unauthenticated(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, errorResponse{
		Code:    http.StatusUnauthorized,
		Kind:    "unauthenticated",
		Message: message,
	})
}

// actorFrom fetches the actor the auth middleware stored.
func actorFrom(ctx echo.Context) (auth.Actor, error) {
	actor, ok := ctx.Get(actorContextKey).(auth.Actor)
	if !ok {
		return auth.Actor{}, errs.NewForbiddenError()
	}
	return actor, nil
}
