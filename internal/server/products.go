package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clktech/storefront/internal/models"
	"github.com/clktech/storefront/internal/store"
)

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.st.Products.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch products", nil)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// getProduct resolves a numeric identifier as an id and anything else as
// a slug. A numeric identifier that matches no id falls back to slug
// lookup too, so a product whose slug is all digits stays reachable.
func (s *Server) getProduct(c *gin.Context) {
	identifier := c.Param("identifier")
	ctx := c.Request.Context()

	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		product, err := s.st.Products.GetByID(ctx, id)
		if err == nil {
			c.JSON(http.StatusOK, product)
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusInternalServerError, "Failed to fetch product", nil)
			return
		}
	}

	product, err := s.st.Products.GetBySlug(ctx, identifier)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch product", nil)
		return
	}
	c.JSON(http.StatusOK, product)
}

// createProduct accepts a multipart form from the admin panel. Bilingual
// fields may arrive as {tr, en} JSON, a double-encoded JSON string, or a
// bare string; ParseLocalized absorbs all three.
func (s *Server) createProduct(c *gin.Context) {
	if strings.TrimSpace(c.PostForm("slug")) == "" {
		respondError(c, http.StatusBadRequest, "Invalid product data", "Slug field is required")
		return
	}

	in := models.ProductInput{
		Name:            models.ParseLocalized(c.PostForm("name")),
		Slug:            c.PostForm("slug"),
		Description:     models.ParseLocalized(c.PostForm("description")),
		FullDescription: models.ParseLocalized(c.PostForm("fullDescription")),
		Price:           models.ParseLocalized(c.PostForm("price")),
		Image:           c.PostForm("image"),
		Category:        c.PostForm("category"),
		InStock:         c.PostForm("inStock") == "true",
		Specs:           c.PostForm("specs"),
		ExternalLinks:   c.PostForm("externalLinks"),
	}

	if in.Name.TR == "" || in.Name.EN == "" {
		respondError(c, http.StatusBadRequest, "Invalid product data",
			"Product name is required in both Turkish and English")
		return
	}
	if in.Category == "" {
		respondError(c, http.StatusBadRequest, "Invalid product data", "Category is required")
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := s.saveImage(c, file)
		if err != nil {
			respondUploadError(c, err)
			return
		}
		in.Image = url
	}

	product, err := s.st.Products.Create(c.Request.Context(), in)
	if err != nil {
		respondStoreError(c, err, "Invalid product data")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Product not found", nil)
		return
	}

	// Slug is required on every update so a form reset can never wipe it.
	if strings.TrimSpace(c.PostForm("slug")) == "" {
		respondError(c, http.StatusBadRequest, "Invalid product data", "Slug field is required")
		return
	}

	var patch models.ProductPatch
	slug := c.PostForm("slug")
	patch.Slug = &slug

	if raw, ok := c.GetPostForm("name"); ok {
		name := models.ParseLocalized(raw)
		if name.TR == "" || name.EN == "" {
			respondError(c, http.StatusBadRequest, "Invalid product data",
				"Product name is required in both Turkish and English")
			return
		}
		patch.Name = &name
	}
	if raw, ok := c.GetPostForm("description"); ok {
		v := models.ParseLocalized(raw)
		patch.Description = &v
	}
	if raw, ok := c.GetPostForm("fullDescription"); ok {
		v := models.ParseLocalized(raw)
		patch.FullDescription = &v
	}
	if raw, ok := c.GetPostForm("price"); ok {
		v := models.ParseLocalized(raw)
		patch.Price = &v
	}
	if raw, ok := c.GetPostForm("category"); ok {
		patch.Category = &raw
	}
	if raw, ok := c.GetPostForm("inStock"); ok {
		v := raw == "true"
		patch.InStock = &v
	}
	if raw, ok := c.GetPostForm("specs"); ok {
		patch.Specs = &raw
	}
	if raw, ok := c.GetPostForm("externalLinks"); ok {
		patch.ExternalLinks = &raw
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := s.saveImage(c, file)
		if err != nil {
			respondUploadError(c, err)
			return
		}
		patch.Image = &url
	} else if raw, ok := c.GetPostForm("image"); ok {
		patch.Image = &raw
	}

	product, err := s.st.Products.Update(c.Request.Context(), id, patch)
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Product not found", nil)
		return
	}
	if err != nil {
		respondStoreError(c, err, "Invalid product data")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Product not found", nil)
		return
	}

	if err := s.st.Products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete product", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
