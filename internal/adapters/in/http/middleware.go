package http

import (
	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/ports"
	"tawsil/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers injected by the authenticating proxy in front of the
// service. The email is the identity key; name and image only matter on the
// first role claim.
const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
	HeaderUserImage = "X-User-Image"
)

const principalContextKey = "tawsil.principal"

// PrincipalMiddleware resolves the proxy-injected identity into a principal
// and attaches it to the request context. Requests without an identity
// header are rejected before any handler runs.
func PrincipalMiddleware(resolver ports.PrincipalResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			email := ctx.Request().Header.Get(HeaderUserEmail)
			if email == "" {
				return writeError(ctx, errs.NewUnauthenticatedError())
			}

			principal, err := resolver.Resolve(ctx.Request().Context(), email)
			if err != nil {
				return writeError(ctx, err)
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

func principalFrom(ctx echo.Context) (account.Principal, error) {
	principal, ok := ctx.Get(principalContextKey).(account.Principal)
	if !ok {
		return account.Principal{}, errs.NewUnauthenticatedError()
	}
	return principal, nil
}
