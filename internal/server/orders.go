package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clktech/storefront/internal/models"
	"github.com/clktech/storefront/internal/store"
)

// createOrder is the public storefront order submission. Status always
// starts as pending and the order reference is generated server-side.
func (s *Server) createOrder(c *gin.Context) {
	var in models.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order data", err.Error())
		return
	}

	order, err := s.st.Orders.Create(c.Request.Context(), in)
	if err != nil {
		respondStoreError(c, err, "Invalid order data")
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.st.Orders.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders", nil)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// updateOrder mutates the admin-editable fields: status and notes.
func (s *Server) updateOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Order not found", nil)
		return
	}

	var patch models.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order data", err.Error())
		return
	}

	order, err := s.st.Orders.Update(c.Request.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Order not found", nil)
		return
	}
	if errors.Is(err, store.ErrInvalidInput) {
		respondError(c, http.StatusBadRequest, "Invalid order data", err.Error())
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to update order", nil)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Order not found", nil)
		return
	}

	if err := s.st.Orders.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Order not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete order", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
