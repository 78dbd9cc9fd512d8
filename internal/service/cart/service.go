package cart

import (
	"context"

	"storefront/internal/domain"
)

// Service coordinates the single shared cart. Every mutation returns the
// resulting cart view so clients always render fresh state.
type Service struct {
	repo        cartRepo
	productRepo productRepo
}

type cartRepo interface {
	Add(ctx context.Context, productID int64, quantity int) error
	SetQuantity(ctx context.Context, itemID int64, quantity int) error
	Remove(ctx context.Context, itemID int64) error
	Clear(ctx context.Context) error
	View(ctx context.Context) ([]domain.CartItem, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo cartRepo, productRepo productRepo) *Service {
	return &Service{repo: repo, productRepo: productRepo}
}

func (s *Service) Add(ctx context.Context, productID int64, quantity int) ([]domain.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := s.repo.Add(ctx, productID, quantity); err != nil {
		return nil, err
	}
	return s.repo.View(ctx)
}

func (s *Service) SetQuantity(ctx context.Context, itemID int64, quantity int) ([]domain.CartItem, error) {
	if err := s.repo.SetQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}
	return s.repo.View(ctx)
}

func (s *Service) Remove(ctx context.Context, itemID int64) ([]domain.CartItem, error) {
	if err := s.repo.Remove(ctx, itemID); err != nil {
		return nil, err
	}
	return s.repo.View(ctx)
}

func (s *Service) Clear(ctx context.Context) ([]domain.CartItem, error) {
	if err := s.repo.Clear(ctx); err != nil {
		return nil, err
	}
	return []domain.CartItem{}, nil
}

func (s *Service) View(ctx context.Context) ([]domain.CartItem, error) {
	return s.repo.View(ctx)
}
