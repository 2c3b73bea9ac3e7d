package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/darazkeeper/internal/common"
	"github.com/dmitrijs2005/darazkeeper/internal/dbx"
	"github.com/dmitrijs2005/darazkeeper/internal/models"
	"github.com/dmitrijs2005/darazkeeper/internal/repositories/products"
	"github.com/google/uuid"
)

// ProductService defines catalog operations. Reads that take a userID enforce
// ownership: a product of another user behaves as if it did not exist.
type ProductService interface {
	List(ctx context.Context, userID string) ([]models.Product, error)
	Get(ctx context.Context, userID, id string) (*models.Product, error)
	Add(ctx context.Context, in AddProductInput) (*models.Product, error)
	Update(ctx context.Context, id string, upd models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// AddProductInput carries the fields of a new product; identifier and
// timestamps are assigned by the service.
type AddProductInput struct {
	UserID    string
	Title     string
	Images    []string
	CostPrice float64
	SellPrice float64
	Stock     int
	DarazLink string
}

type productService struct {
	db    *sql.DB
	delay time.Duration
}

// NewProductService constructs a ProductService over the given database. The
// delay is the artificial latency applied before each operation.
func NewProductService(db *sql.DB, delay time.Duration) ProductService {
	return &productService{db: db, delay: delay}
}

func (s *productService) repo(db dbx.DBTX) products.Repository {
	return products.NewSQLiteRepository(db)
}

// List returns the user's products, newest first by creation time.
func (s *productService) List(ctx context.Context, userID string) ([]models.Product, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo(s.db).GetAllByUser(ctx, userID)
}

// Get returns one product of the given user. A product owned by somebody
// else yields ErrorNotFound rather than leaking its existence.
func (s *productService) Get(ctx context.Context, userID, id string) (*models.Product, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	p, err := s.repo(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

// Add validates and stores a new product. Both timestamps are set to the same
// instant.
func (s *productService) Add(ctx context.Context, in AddProductInput) (*models.Product, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	p := &models.Product{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Title:     in.Title,
		Images:    in.Images,
		CostPrice: in.CostPrice,
		SellPrice: in.SellPrice,
		Stock:     in.Stock,
		DarazLink: in.DarazLink,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.repo(s.db).Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("error adding product: %w", err)
	}
	return p, nil
}

// Update merges the non-nil fields of upd onto the stored product, refreshes
// UpdatedAt to a strictly later instant, and returns the merged record.
// Returns ErrorNotFound when no product has the given identifier.
func (s *productService) Update(ctx context.Context, id string, upd models.ProductUpdate) (*models.Product, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	var merged *models.Product
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)

		p, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		upd.Apply(p)
		if err := validateProduct(p); err != nil {
			return err
		}

		now := time.Now().UTC()
		if !now.After(p.UpdatedAt) {
			now = p.UpdatedAt.Add(time.Nanosecond)
		}
		p.UpdatedAt = now

		if err := repo.Update(ctx, p); err != nil {
			return err
		}
		merged = p
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating product: %w", err)
	}
	return merged, nil
}

// Delete removes the product if present. Deleting an unknown id is a no-op.
func (s *productService) Delete(ctx context.Context, id string) error {
	if err := wait(ctx, s.delay); err != nil {
		return err
	}
	return s.repo(s.db).DeleteByID(ctx, id)
}

func validateProduct(p *models.Product) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	if p.CostPrice < 0 || p.SellPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", common.ErrorValidation)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", common.ErrorValidation)
	}
	if len(p.Images) > models.MaxProductImages {
		return fmt.Errorf("%w: at most %d images", common.ErrorValidation, models.MaxProductImages)
	}
	return nil
}
