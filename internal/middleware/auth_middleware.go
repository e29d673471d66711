package middleware

import (
	"strings"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TokenParser resolves a bearer token into the caller identity.
type TokenParser interface {
	ParseAccessToken(token string) (domain.Identity, error)
}

func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		identity, err := parser.ParseAccessToken(tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// SetIdentity stores the caller on the gin context, mirroring the flat keys
// read by logging middleware.
func SetIdentity(c *gin.Context, identity domain.Identity) {
	c.Set(identityKey, identity)
	c.Set("user_id", identity.UserID)
	c.Set("organization_id", identity.OrganizationID)
	c.Set("role", identity.Role)
}

// GetIdentity returns the caller, or an anonymous identity when the request
// did not pass through AuthMiddleware.
func GetIdentity(c *gin.Context) domain.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(domain.Identity); ok {
			return identity
		}
	}
	return domain.Identity{}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetIdentity(c).Role
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		response.FromError(c, apperror.ErrForbidden)
		c.Abort()
	}
}
