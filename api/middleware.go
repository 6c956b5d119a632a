package api

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/mbeoliero/leadgen/domain/service"
	"github.com/mbeoliero/leadgen/pkg/log"
)

const userEmailKey = "userEmail"

// AuthMiddleware validates the bearer credential and stores the caller's
// email on the request context. Every failure kind maps to the same generic
// 401 so the response never reveals which part of the credential failed.
func AuthMiddleware(auth *service.AuthService) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		email, err := auth.Authorize(string(c.GetHeader("Authorization")))
		if err != nil {
			var authErr *service.AuthError
			if errors.As(err, &authErr) {
				log.CtxDebug(ctx, "auth rejected, kind: %s", authErr.Kind)
			}
			c.AbortWithStatusJSON(consts.StatusUnauthorized, utils.H{"detail": "Invalid token"})
			return
		}

		c.Set(userEmailKey, email)
		c.Next(ctx)
	}
}

func currentUser(c *app.RequestContext) string {
	return c.GetString(userEmailKey)
}

func abortDetail(c *app.RequestContext, code int, detail string) {
	c.JSON(code, utils.H{"detail": detail})
}
