package products

import (
	"context"

	"github.com/dmitrijs2005/darazkeeper/internal/models"
)

// Repository describes storage and aggregation operations for Products.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Insert stores a new product.
	Insert(ctx context.Context, product *models.Product) error

	// GetByID returns a product by its identifier, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Product, error)

	// GetAllByUser returns the user's products, newest first by creation time.
	GetAllByUser(ctx context.Context, userID string) ([]models.Product, error)

	// Update replaces the stored record entirely. Returns common.ErrorNotFound
	// when no product has the given identifier.
	Update(ctx context.Context, product *models.Product) error

	// DeleteByID removes the product if present; absent ids are a no-op.
	DeleteByID(ctx context.Context, id string) error

	// CountStock aggregates stock-level counts for the dashboard. Products
	// with 0 < stock < lowStockThreshold count as low stock; today is a UTC
	// date string ("2006-01-02") used for the added-today count.
	CountStock(ctx context.Context, userID string, lowStockThreshold int, today string) (*models.DashboardStats, error)

	// Totals sums inventory cost and projected revenue over current stock.
	Totals(ctx context.Context, userID string) (*models.InventoryTotals, error)

	// Monthly aggregates cost and projected profit of stock grouped by the
	// month a product was added, in chronological order. Keys are "2006-01".
	Monthly(ctx context.Context, userID string) ([]MonthlyRow, error)
}

// MonthlyRow is a single month of the Monthly aggregation.
type MonthlyRow struct {
	Month  string
	Cost   float64
	Profit float64
}
