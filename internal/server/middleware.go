package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const adminClaimsKey = "adminClaims"

// requireAdmin gates admin routes behind bearer-token verification. It
// aborts with 401 before the route handler runs, so no storage accessor
// executes for unauthenticated requests.
func (s *Server) requireAdmin(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return
	}

	claims, err := s.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		return
	}

	c.Set(adminClaimsKey, claims)
	c.Next()
}
