package server

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clktech/storefront/internal/models"
)

// publicSettings serves the storefront's settings read. NULL feature
// toggles read as enabled, so a fresh database shows the bank transfer
// option and external links.
func (s *Server) publicSettings(c *gin.Context) {
	settings, err := s.st.Settings.Get(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) adminSettings(c *gin.Context) {
	settings, err := s.st.Settings.Get(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

var schemeRe = regexp.MustCompile(`^https?://`)

// normalizeSocialURL prefixes https:// when the admin pasted a bare host.
func normalizeSocialURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" || schemeRe.MatchString(u) {
		return u
	}
	return "https://" + u
}

func (s *Server) updateSettings(c *gin.Context) {
	var patch models.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid settings data", err.Error())
		return
	}

	for _, field := range []**string{
		&patch.SocialFacebook, &patch.SocialTwitter,
		&patch.SocialInstagram, &patch.SocialLinkedin,
	} {
		if *field != nil {
			v := normalizeSocialURL(**field)
			*field = &v
		}
	}

	settings, err := s.st.Settings.Update(c.Request.Context(), patch)
	if err != nil {
		respondStoreError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
