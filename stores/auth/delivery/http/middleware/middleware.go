package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/delivery"
	"github.com/hinatamarket/goapi/domain"
)

type AuthMiddleware struct {
	auth      domain.AuthUsecase
	roleStore domain.RoleStore
}

func New(auth domain.AuthUsecase, roleStore domain.RoleStore) *AuthMiddleware {
	return &AuthMiddleware{
		auth:      auth,
		roleStore: roleStore,
	}
}

func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return middleware.KeyAuth(m.validateAuthToken)
}

func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			return len(auth) == 0
		},
		Validator: m.validateAuthToken,
	})
}

// IsAdmin gates admin endpoints on the external role store. Role checks
// run against the chainId query/path param when present, chain 1 otherwise.
func (m *AuthMiddleware) IsAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			context := c.Get("ctx").(ctx.Ctx)

			address := c.Get("address").(domain.Address)

			chainId := domain.ChainId(1)
			type params struct {
				ChainId *domain.ChainId `param:"chainId" query:"chainId"`
			}
			p := &params{}
			if err := c.Bind(p); err == nil && p.ChainId != nil {
				chainId = *p.ChainId
			}

			if ok, err := m.roleStore.HasRole(context, chainId, domain.RoleAdmin, address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if ok {
				return next(c)
			}

			if ok, err := m.roleStore.HasRole(context, chainId, domain.RoleSuperAdmin, address); err != nil {
				return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
			} else if !ok {
				return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, "require admin privilege")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateAuthToken(key string, c echo.Context) (bool, error) {
	ctx := c.Get("ctx").(ctx.Ctx)
	if ads, err := m.auth.ParseToken(ctx, key); err != nil {
		ctx.WithField("err", err).Error("auth.ParseToken failed")
		return false, err
	} else {
		c.Set("address", domain.Address(ads))
		return true, nil
	}
}
