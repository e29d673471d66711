package middleware

import (
	"net/http"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service; declared here to keep middleware
// free of feature imports.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity.IsAnonymous() {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     identity.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				apperror.ErrForbidden.Message, gin.H{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
