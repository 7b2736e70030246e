package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clktech/storefront/internal/models"
	"github.com/clktech/storefront/internal/store"
)

// createContact stores a contact-form submission. The arithmetic captcha
// is generated and checked client-side; the server records the answer
// without re-verifying it.
func (s *Server) createContact(c *gin.Context) {
	var in models.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact data", err.Error())
		return
	}

	contact, err := s.st.Contacts.Create(c.Request.Context(), in)
	if err != nil {
		respondStoreError(c, err, "Invalid contact data")
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (s *Server) listContacts(c *gin.Context) {
	contacts, err := s.st.Contacts.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch contacts", nil)
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}

func (s *Server) deleteContact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Contact not found", nil)
		return
	}

	if err := s.st.Contacts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Contact not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete contact", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
