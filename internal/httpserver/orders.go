package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/metrics"
	"storefront/internal/service/order"
)

type checkoutRequest struct {
	Items        []order.CheckoutItem `json:"items"`
	CustomerInfo domain.CustomerInfo  `json:"customerInfo"`
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.OrderSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "", "Failed to fetch orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	o, err := h.deps.OrderSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "Order not found", "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *handlers) createOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	o, err := h.deps.OrderSvc.Checkout(c.Request.Context(), req.Items, req.CustomerInfo)
	if err != nil {
		respondError(c, h.logger, err, "", "Failed to create order")
		return
	}
	metrics.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, o)
}
