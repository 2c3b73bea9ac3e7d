package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) Dashboard(ctx context.Context) error {
	s, err := a.reportService.Dashboard(ctx, a.user.ID)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Welcome, %s\n", a.user.FullName())
	if a.user.DarazStoreLink != "" {
		fmt.Printf("Store: %s\n", a.user.DarazStoreLink)
	} else {
		fmt.Println("Tip: add your store link via 'settings'.")
	}
	fmt.Printf("Total products: %d\n", s.TotalProducts)
	fmt.Printf("In stock:       %d\n", s.InStock)
	fmt.Printf("Low stock:      %d\n", s.LowStock)
	fmt.Printf("Out of stock:   %d\n", s.OutOfStock)
	fmt.Printf("Added today:    %d\n", s.AddedToday)
	return nil
}

func (a *App) Report(ctx context.Context) error {
	tot, err := a.reportService.Totals(ctx, a.user.ID)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Total inventory cost: Rs. %.2f\n", tot.TotalCost)
	fmt.Printf("Projected revenue:    Rs. %.2f\n", tot.ProjectedRevenue)
	fmt.Printf("Projected profit:     Rs. %.2f\n", tot.ProjectedProfit)

	monthly, err := a.reportService.Monthly(ctx, a.user.ID)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(monthly) > 0 {
		fmt.Println("\nInventory value by month added:")
		for _, m := range monthly {
			fmt.Printf("  %s  cost %.2f  profit %.2f\n", m.Month, m.Cost, m.Profit)
		}
	}
	return nil
}

func (a *App) Analyze(ctx context.Context) error {
	fmt.Println("Requesting AI analysis...")

	text, err := a.reportService.Analyze(ctx, a.user.ID)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println(text)
	return nil
}
