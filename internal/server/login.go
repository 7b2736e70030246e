package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clktech/storefront/internal/auth"
	"github.com/clktech/storefront/internal/models"
	"github.com/clktech/storefront/internal/store"
)

// login exchanges admin credentials for a bearer token. The admin panel
// sends email, older tooling sends username; both work.
func (s *Server) login(c *gin.Context) {
	var in models.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil || in.Login() == "" {
		respondError(c, http.StatusUnauthorized, "Email and password required", nil)
		return
	}

	admin, err := s.st.Admins.GetByLogin(c.Request.Context(), in.Login())
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error", nil)
		return
	}

	if !auth.CheckPassword(admin.Password, in.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := s.tokens.Issue(admin.ID, admin.Email)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    gin.H{"id": admin.ID, "email": admin.Email},
	})
}
