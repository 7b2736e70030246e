package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// logClientError appends storefront-reported errors to a local log file,
// one JSON object per line. The storefront calls this for unexpected
// fetch failures instead of surfacing them to visitors.
func (s *Server) logClientError(c *gin.Context) {
	var report map[string]interface{}
	if err := c.ShouldBindJSON(&report); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid error report", err.Error())
		return
	}

	entry := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range report {
		entry[k] = v
	}

	line, err := json.Marshal(entry)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to log error", nil)
		return
	}

	path := s.cfg.Log.ClientErrorFile
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to log error", err.Error())
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to log error", err.Error())
		return
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to log error", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Error logged"})
}
