package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/service/catalog"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.CatalogSvc.List(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err, "Product not found", "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := h.deps.CatalogSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Product not found", "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CatalogSvc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "", "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handlers) adminListProducts(c *gin.Context) {
	products, err := h.deps.CatalogSvc.List(c.Request.Context(), "", "")
	if err != nil {
		respondError(c, h.logger, err, "", "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) createProduct(c *gin.Context) {
	uploadedURL, ok := h.saveImageIfPresent(c)
	if !ok {
		return
	}

	product, err := h.deps.CatalogSvc.Create(c.Request.Context(), catalog.CreateInput{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Price:       c.PostForm("price"),
		Description: c.PostForm("description"),
		Stock:       c.PostForm("stock"),
		ImageURL:    c.PostForm("imageUrl"),
		UploadedURL: uploadedURL,
	})
	if err != nil {
		respondError(c, h.logger, err, "", "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *handlers) updateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	uploadedURL, ok := h.saveImageIfPresent(c)
	if !ok {
		return
	}

	in := catalog.UpdateInput{
		Name:        formField(c, "name"),
		Category:    formField(c, "category"),
		Price:       formField(c, "price"),
		Description: formField(c, "description"),
		ImageURL:    c.PostForm("imageUrl"),
		UploadedURL: uploadedURL,
	}
	// Stock counts as supplied whenever the field is present, even as "0".
	if v, present := c.GetPostForm("stock"); present {
		in.Stock = &v
	}

	product, err := h.deps.CatalogSvc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, h.logger, err, "Product not found", "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.deps.CatalogSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, "Product not found", "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// saveImageIfPresent stores the optional multipart image. A false return means
// the request already received an error response.
func (h *handlers) saveImageIfPresent(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", true
	}
	if h.deps.Uploads == nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "uploads not configured"})
		return "", false
	}
	url, err := h.deps.Uploads.Save(fh)
	if err != nil {
		respondError(c, h.logger, err, "", "Failed to store image")
		return "", false
	}
	return url, true
}

// formField returns a pointer only for non-empty supplied fields, so blank
// inputs never wipe stored values.
func formField(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok && v != "" {
		return &v
	}
	return nil
}
