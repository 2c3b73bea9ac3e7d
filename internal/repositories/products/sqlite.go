package products

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/darazkeeper/internal/common"
	"github.com/dmitrijs2005/darazkeeper/internal/dbx"
	"github.com/dmitrijs2005/darazkeeper/internal/models"
)

// timeLayout is how timestamps are stored. The fixed-width fraction keeps
// the text form lexicographically sortable, which ORDER BY and the substr
// aggregations below depend on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, p *models.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	query := `INSERT INTO products (id, user_id, title, images, cost_price, sell_price, stock, daraz_link, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.Title, string(images), p.CostPrice, p.SellPrice, p.Stock, p.DarazLink,
		p.CreatedAt.UTC().Format(timeLayout), p.UpdatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT id, user_id, title, images, cost_price, sell_price, stock, daraz_link, created_at, updated_at
		FROM products WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLiteRepository) GetAllByUser(ctx context.Context, userID string) ([]models.Product, error) {
	query := `SELECT id, user_id, title, images, cost_price, sell_price, stock, daraz_link, created_at, updated_at
		FROM products WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	var result []models.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *models.Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	query := `UPDATE products SET title = ?, images = ?, cost_price = ?, sell_price = ?, stock = ?, daraz_link = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Title, string(images), p.CostPrice, p.SellPrice, p.Stock, p.DarazLink,
		p.UpdatedAt.UTC().Format(timeLayout), p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) CountStock(ctx context.Context, userID string, lowStockThreshold int, today string) (*models.DashboardStats, error) {
	query := `SELECT
			count(*),
			coalesce(sum(stock > 0), 0),
			coalesce(sum(stock > 0 AND stock < ?), 0),
			coalesce(sum(stock = 0), 0),
			coalesce(sum(substr(created_at, 1, 10) = ?), 0)
		FROM products WHERE user_id = ?`

	s := &models.DashboardStats{}
	err := r.db.QueryRowContext(ctx, query, lowStockThreshold, today, userID).
		Scan(&s.TotalProducts, &s.InStock, &s.LowStock, &s.OutOfStock, &s.AddedToday)
	if err != nil {
		return nil, fmt.Errorf("failed to count stock: %w", err)
	}
	return s, nil
}

func (r *SQLiteRepository) Totals(ctx context.Context, userID string) (*models.InventoryTotals, error) {
	query := `SELECT
			coalesce(sum(cost_price * stock), 0),
			coalesce(sum(sell_price * stock), 0)
		FROM products WHERE user_id = ?`

	t := &models.InventoryTotals{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&t.TotalCost, &t.ProjectedRevenue)
	if err != nil {
		return nil, fmt.Errorf("failed to sum totals: %w", err)
	}
	t.ProjectedProfit = t.ProjectedRevenue - t.TotalCost
	return t, nil
}

func (r *SQLiteRepository) Monthly(ctx context.Context, userID string) ([]MonthlyRow, error) {
	query := `SELECT
			substr(created_at, 1, 7),
			coalesce(sum(cost_price * stock), 0),
			coalesce(sum((sell_price - cost_price) * stock), 0)
		FROM products WHERE user_id = ?
		GROUP BY substr(created_at, 1, 7)
		ORDER BY substr(created_at, 1, 7)`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by month: %w", err)
	}
	defer rows.Close()

	var result []MonthlyRow
	for rows.Next() {
		var m MonthlyRow
		if err := rows.Scan(&m.Month, &m.Cost, &m.Profit); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// scanProduct decodes one product row. The scan argument order must match the
// SELECT column order used by the queries above.
func scanProduct(scan func(dest ...any) error) (*models.Product, error) {
	p := &models.Product{}
	var images, createdAt, updatedAt string

	if err := scan(&p.ID, &p.UserID, &p.Title, &images, &p.CostPrice, &p.SellPrice,
		&p.Stock, &p.DarazLink, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return nil, fmt.Errorf("%w: images of product %s: %v", common.ErrorStorageCorrupt, p.ID, err)
	}

	var err error
	if p.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("%w: created_at of product %s: %v", common.ErrorStorageCorrupt, p.ID, err)
	}
	if p.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return nil, fmt.Errorf("%w: updated_at of product %s: %v", common.ErrorStorageCorrupt, p.ID, err)
	}
	return p, nil
}
