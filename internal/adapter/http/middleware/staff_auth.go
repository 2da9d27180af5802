package middleware

import (
	"net/http"

	"repairhub/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderAdminToken carries the shared staff secret on staff-only endpoints.
const HeaderAdminToken = "X-Admin-Token"

var (
	errTokenNotConfigured = pkg.NewDomainErrorSimple("ADMIN_TOKEN_NOT_SET", "Staff token not configured", http.StatusInternalServerError)
	errUnauthorized       = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
)

// StaffAuth gates staff-only operations behind a shared secret compared by
// exact string equality. Until the token is configured every staff endpoint
// answers 500, matching the storefront's historical behavior.
func StaffAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.AbortWithStatusJSON(errTokenNotConfigured.HTTPStatus, errTokenNotConfigured.ToHTTPError())
			return
		}
		supplied := c.GetHeader(HeaderAdminToken)
		if supplied == "" || supplied != token {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}
