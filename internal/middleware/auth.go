package middleware

import (
	"net/http"
	"strings"

	"comanda/internal/apierror"
	"comanda/internal/security"

	"github.com/gin-gonic/gin"
)

const subjectKey = "subject_id"

// JWTAuth validates the Bearer token on every protected route and stores the
// subject employee id for the handlers. Anything wrong with the credential —
// missing header, bad signature, wrong issuer or audience, expired — is a 401;
// role and ownership decisions happen later, in the policy.
func JWTAuth(cfg security.TokenConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Envelope("The token is invalid"))
			return
		}

		claims, err := security.ValidateToken(strings.TrimPrefix(header, "Bearer "), cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Envelope("The token is invalid"))
			return
		}

		subject, ok := security.StringClaim(claims, security.SubjectClaim)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Envelope("The token is invalid"))
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

// SubjectID returns the employee id bound to the validated token.
func SubjectID(c *gin.Context) string {
	return c.GetString(subjectKey)
}
