package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clktech/storefront/internal/models"
)

// priceAmount extracts the numeric part of a bilingual price snapshot,
// e.g. "1299.90 TL" or "$49.99". Unparseable prices count as zero so a
// single malformed order cannot break the dashboard.
func priceAmount(price models.Localized) float64 {
	for _, raw := range []string{price.TR, price.EN} {
		cleaned := strings.TrimLeft(strings.TrimSpace(raw), "$€£")
		end := 0
		for end < len(cleaned) && (cleaned[end] >= '0' && cleaned[end] <= '9' || cleaned[end] == '.') {
			end++
		}
		if end == 0 {
			continue
		}
		if v, err := strconv.ParseFloat(cleaned[:end], 64); err == nil {
			return v
		}
	}
	return 0
}

// stats aggregates the dashboard counters in one response.
func (s *Server) stats(c *gin.Context) {
	ctx := c.Request.Context()

	products, err := s.st.Products.List(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch stats", nil)
		return
	}
	orders, err := s.st.Orders.List(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch stats", nil)
		return
	}
	contacts, err := s.st.Contacts.List(ctx)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch stats", nil)
		return
	}

	pending := 0
	totalSales := 0.0
	for _, o := range orders {
		if o.Status == models.OrderStatusPending {
			pending++
		}
		totalSales += priceAmount(o.Price)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalProducts": len(products),
		"pendingOrders": pending,
		"totalSales":    totalSales,
		"totalOrders":   len(orders),
		"totalContacts": len(contacts),
	})
}
