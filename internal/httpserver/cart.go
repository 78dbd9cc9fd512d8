package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	items, err := h.deps.CartSvc.View(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "", "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	items, err := h.deps.CartSvc.Add(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err, "Product not found", "Failed to add to cart")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) updateCartItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	items, err := h.deps.CartSvc.SetQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err, "Cart item not found", "Failed to update cart")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	items, err := h.deps.CartSvc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Cart item not found", "Failed to delete cart item")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) clearCart(c *gin.Context) {
	items, err := h.deps.CartSvc.Clear(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "", "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, items)
}
