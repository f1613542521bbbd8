package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/auth"
	"pharmacy-system/internal/database/models"
)

const employeeKey = "current_employee"

// SessionAuth gates every request behind a valid session cookie unless the
// path matches the exclusion list. The resolved employee is attached to the
// request context for downstream handlers.
func SessionAuth(svc *auth.Service, excludedPaths []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.RequireAuth(c.Request.URL.Path, excludedPaths) {
			c.Next()
			return
		}

		token, err := c.Cookie(svc.CookieName())
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		employee, err := svc.CurrentEmployee(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}
		if employee == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(employeeKey, employee)
		c.Next()
	}
}

// AdminOnly restricts a route to admin employees. Layered on top of
// SessionAuth, which must already have attached the employee.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		employee, ok := CurrentEmployee(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !employee.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// CurrentEmployee returns the employee attached by SessionAuth.
func CurrentEmployee(c *gin.Context) (*models.Employee, bool) {
	value, exists := c.Get(employeeKey)
	if !exists {
		return nil, false
	}
	employee, ok := value.(*models.Employee)
	return employee, ok
}
