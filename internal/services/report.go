package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/darazkeeper/internal/models"
	"github.com/dmitrijs2005/darazkeeper/internal/repositories/products"
)

// Analyzer produces free-form analysis text from an inventory snapshot.
// The gemini.Client satisfies this; tests substitute a stub.
type Analyzer interface {
	AnalyzeBusiness(ctx context.Context, products []models.Product) string
}

// ReportService aggregates the catalog into dashboard and report figures and
// requests the optional AI analysis.
type ReportService interface {
	Dashboard(ctx context.Context, userID string) (*models.DashboardStats, error)
	Totals(ctx context.Context, userID string) (*models.InventoryTotals, error)
	Monthly(ctx context.Context, userID string) ([]models.MonthlyStats, error)
	Analyze(ctx context.Context, userID string) (string, error)
}

type reportService struct {
	db                *sql.DB
	analyzer          Analyzer
	lowStockThreshold int
	delay             time.Duration
}

// NewReportService constructs a ReportService. Products with
// 0 < stock < lowStockThreshold count as low stock.
func NewReportService(db *sql.DB, analyzer Analyzer, lowStockThreshold int, delay time.Duration) ReportService {
	return &reportService{db: db, analyzer: analyzer, lowStockThreshold: lowStockThreshold, delay: delay}
}

func (s *reportService) repo() products.Repository {
	return products.NewSQLiteRepository(s.db)
}

func (s *reportService) Dashboard(ctx context.Context, userID string) (*models.DashboardStats, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	today := time.Now().UTC().Format("2006-01-02")
	return s.repo().CountStock(ctx, userID, s.lowStockThreshold, today)
}

func (s *reportService) Totals(ctx context.Context, userID string) (*models.InventoryTotals, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.repo().Totals(ctx, userID)
}

// Monthly returns per-month cost and projected profit of added stock, in
// chronological order, labeled like "Sep 26".
func (s *reportService) Monthly(ctx context.Context, userID string) ([]models.MonthlyStats, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	rows, err := s.repo().Monthly(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.MonthlyStats, 0, len(rows))
	for _, row := range rows {
		month, err := time.Parse("2006-01", row.Month)
		if err != nil {
			return nil, fmt.Errorf("unexpected month key %q: %w", row.Month, err)
		}
		result = append(result, models.MonthlyStats{
			Month:  month.Format("Jan 06"),
			Cost:   row.Cost,
			Profit: row.Profit,
		})
	}
	return result, nil
}

// Analyze sends the user's full catalog to the analyzer. The returned text is
// either the generated analysis or one of the analyzer's fixed fallbacks.
func (s *reportService) Analyze(ctx context.Context, userID string) (string, error) {
	list, err := s.repo().GetAllByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.analyzer.AnalyzeBusiness(ctx, list), nil
}
