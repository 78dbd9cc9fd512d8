package catalog

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"storefront/internal/domain"
	productrepo "storefront/internal/repository/product"
)

type Service struct {
	repo productRepo
}

type productRepo interface {
	List(ctx context.Context, filter productrepo.ListFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// fallbackImages maps seeded categories to a stock photo used when a product
// is created without an uploaded file or explicit URL.
var fallbackImages = map[string]string{
	"Tents":       "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=300&h=300&fit=crop",
	"Backpacks":   "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop",
	"Footwear":    "https://images.unsplash.com/photo-1520639888713-7851133b1ed0?w=300&h=300&fit=crop",
	"Cookware":    "https://images.unsplash.com/photo-1523987355523-c7b5b0dd90a7?w=300&h=300&fit=crop",
	"Optics":      "https://images.unsplash.com/photo-1519638831568-d9897f54ed69?w=300&h=300&fit=crop",
	"Accessories": "https://images.unsplash.com/photo-1526570207772-784d36084510?w=300&h=300&fit=crop",
}

const defaultFallbackImage = "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=300&h=300&fit=crop"

// CreateInput carries the admin form fields. Price and Stock arrive as strings
// because the endpoint is multipart; UploadedURL is set when an image file was
// stored on disk before the service is called.
type CreateInput struct {
	Name        string
	Category    string
	Price       string
	Description string
	Stock       string
	ImageURL    string
	UploadedURL string
}

type UpdateInput struct {
	Name        *string
	Category    *string
	Price       *string
	Description *string
	Stock       *string
	ImageURL    string
	UploadedURL string
}

func (s *Service) List(ctx context.Context, category, search string) ([]domain.Product, error) {
	return s.repo.List(ctx, productrepo.ListFilter{Category: category, Search: search})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	description := strings.TrimSpace(in.Description)
	if name == "" || category == "" || description == "" || strings.TrimSpace(in.Price) == "" {
		return nil, fmt.Errorf("%w: name, category, price and description are required", domain.ErrInvalid)
	}

	priceCents, err := ParsePriceCents(in.Price)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.Product{
		Name:        name,
		Category:    category,
		PriceCents:  priceCents,
		Description: description,
		Image:       resolveImage(in.UploadedURL, in.ImageURL, category),
		Stock:       parseStock(in.Stock),
	})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Product, error) {
	patch := domain.ProductPatch{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
	}

	if in.Price != nil {
		priceCents, err := ParsePriceCents(*in.Price)
		if err != nil {
			return nil, err
		}
		patch.PriceCents = &priceCents
	}
	if in.Stock != nil {
		stock := parseStock(*in.Stock)
		patch.Stock = &stock
	}
	// Image changes only when a new file or URL was supplied; the category
	// fallback never overwrites an existing image on update.
	if in.UploadedURL != "" {
		patch.Image = &in.UploadedURL
	} else if in.ImageURL != "" {
		patch.Image = &in.ImageURL
	}

	// Nothing supplied: return the stored product without touching updated_at.
	if patch.Empty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// resolveImage applies the image priority rule: uploaded file, then explicit
// URL, then per-category fallback, then the generic default.
func resolveImage(uploadedURL, imageURL, category string) string {
	if uploadedURL != "" {
		return uploadedURL
	}
	if imageURL != "" {
		return imageURL
	}
	return FallbackImage(category)
}

// FallbackImage returns the stock image for a category, or the generic
// default for categories without one.
func FallbackImage(category string) string {
	if img, ok := fallbackImages[category]; ok {
		return img
	}
	return defaultFallbackImage
}

// ParsePriceCents converts a decimal price string like "12.99" to cents.
// Negative or unparseable values are rejected.
func ParsePriceCents(raw string) (int64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: price %q is not a number", domain.ErrInvalid, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", domain.ErrInvalid)
	}
	return int64(math.Round(v * 100)), nil
}

// parseStock coerces the stock form field; invalid or negative input becomes 0.
func parseStock(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
