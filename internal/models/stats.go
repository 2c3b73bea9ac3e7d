package models

// DashboardStats summarizes stock levels of one user's catalog.
type DashboardStats struct {
	TotalProducts int
	InStock       int
	LowStock      int
	OutOfStock    int
	AddedToday    int
}

// InventoryTotals projects the value of the current stock.
type InventoryTotals struct {
	// TotalCost is the purchase value of unsold stock (Σ cost·stock).
	TotalCost float64
	// ProjectedRevenue assumes all current stock sells (Σ sell·stock).
	ProjectedRevenue float64
	// ProjectedProfit is revenue minus cost.
	ProjectedProfit float64
}

// MonthlyStats aggregates stock added during one calendar month.
type MonthlyStats struct {
	// Month is a display label such as "Sep 26".
	Month string
	// Cost is the purchase value of stock added that month.
	Cost float64
	// Profit is the projected profit of stock added that month.
	Profit float64
}
