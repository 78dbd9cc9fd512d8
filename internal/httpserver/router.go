package httpserver

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront/internal/domain"
	"storefront/internal/metrics"
	"storefront/internal/service/catalog"
	"storefront/internal/service/order"
)

// CatalogService is the catalog surface the handlers need.
type CatalogService interface {
	List(ctx context.Context, category, search string) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, in catalog.CreateInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, in catalog.UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type CartService interface {
	Add(ctx context.Context, productID int64, quantity int) ([]domain.CartItem, error)
	SetQuantity(ctx context.Context, itemID int64, quantity int) ([]domain.CartItem, error)
	Remove(ctx context.Context, itemID int64) ([]domain.CartItem, error)
	Clear(ctx context.Context) ([]domain.CartItem, error)
	View(ctx context.Context) ([]domain.CartItem, error)
}

type OrderService interface {
	Checkout(ctx context.Context, items []order.CheckoutItem, info domain.CustomerInfo) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
}

// ImageSaver persists an uploaded product image and returns its public URL.
type ImageSaver interface {
	Dir() string
	Save(fh *multipart.FileHeader) (string, error)
}

type Deps struct {
	CatalogSvc CatalogService
	CartSvc    CartService
	OrderSvc   OrderService
	Uploads    ImageSaver
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), metrics.Middleware())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if deps.Uploads != nil {
		router.Static("/uploads", deps.Uploads.Dir())
	}

	h := &handlers{logger: logger, deps: deps}

	api := router.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.getProduct)
	api.GET("/categories", h.listCategories)

	api.GET("/admin/products", h.adminListProducts)
	api.POST("/admin/products", h.createProduct)
	api.PUT("/admin/products/:id", h.updateProduct)
	api.DELETE("/admin/products/:id", h.deleteProduct)

	api.GET("/cart", h.getCart)
	api.POST("/cart", h.addToCart)
	api.PUT("/cart/:id", h.updateCartItem)
	api.DELETE("/cart/:id", h.removeCartItem)
	api.DELETE("/cart", h.clearCart)

	api.GET("/orders", h.listOrders)
	api.GET("/orders/:id", h.getOrder)
	api.POST("/orders", h.createOrder)

	return router, nil
}

type handlers struct {
	logger *log.Logger
	deps   Deps
}
