package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/darazkeeper/internal/models"
	"github.com/dmitrijs2005/darazkeeper/internal/services"
)

func (a *App) List(ctx context.Context) error {
	list, err := a.productService.List(ctx, a.user.ID)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(list) == 0 {
		fmt.Println("No products yet. Use 'add' to create one.")
		return nil
	}

	for _, p := range list {
		fmt.Printf("%s  %-30s  cost %.2f  sell %.2f  stock %d\n",
			p.ID, p.Title, p.CostPrice, p.SellPrice, p.Stock)
	}
	return nil
}

func (a *App) AddProduct(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	costPrice, err := GetFloat(a.reader, "Enter cost price", 0, os.Stdout)
	if err != nil {
		return err
	}
	sellPrice, err := GetFloat(a.reader, "Enter sell price", 0, os.Stdout)
	if err != nil {
		return err
	}
	stock, err := GetInt(a.reader, "Enter stock quantity", 0, os.Stdout)
	if err != nil {
		return err
	}
	images, err := GetImages(a.reader, models.MaxProductImages, os.Stdout)
	if err != nil {
		return err
	}
	link, err := getSimpleText(a.reader, "Enter Daraz listing URL (optional)", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.productService.Add(ctx, services.AddProductInput{
		UserID:    a.user.ID,
		Title:     title,
		Images:    images,
		CostPrice: costPrice,
		SellPrice: sellPrice,
		Stock:     stock,
		DarazLink: link,
	})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Added %s (%s)\n", p.Title, p.ID)
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.productService.Get(ctx, a.user.ID, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Title:      %s\n", p.Title)
	fmt.Printf("Cost price: %.2f\n", p.CostPrice)
	fmt.Printf("Sell price: %.2f\n", p.SellPrice)
	fmt.Printf("Stock:      %d\n", p.Stock)
	fmt.Printf("Profit/u:   %.2f (%.1f%%)\n", p.ProfitPerUnit(), p.MarginPercent())
	if p.DarazLink != "" {
		fmt.Printf("Listing:    %s\n", p.DarazLink)
	}
	for n, img := range p.Images {
		fmt.Printf("Image %d:    %s\n", n+1, img)
	}
	fmt.Printf("Created:    %s\n", p.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Updated:    %s\n", p.UpdatedAt.Local().Format("2006-01-02 15:04"))
	return nil
}

// Edit walks through every editable field of one product. An empty answer
// keeps the current value, so pressing enter through all prompts is a no-op
// apart from the updated timestamp.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	current, err := a.productService.Get(ctx, a.user.ID, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", current.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		title = current.Title
	}
	costPrice, err := GetFloat(a.reader, "Enter cost price", current.CostPrice, os.Stdout)
	if err != nil {
		return err
	}
	sellPrice, err := GetFloat(a.reader, "Enter sell price", current.SellPrice, os.Stdout)
	if err != nil {
		return err
	}
	stock, err := GetInt(a.reader, "Enter stock quantity", current.Stock, os.Stdout)
	if err != nil {
		return err
	}
	images, err := GetImages(a.reader, models.MaxProductImages, os.Stdout)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		images = current.Images
	}
	link, err := getSimpleText(a.reader, fmt.Sprintf("Enter Daraz listing URL [%s]", current.DarazLink), os.Stdout)
	if err != nil {
		return err
	}
	if link == "" {
		link = current.DarazLink
	}

	p, err := a.productService.Update(ctx, id, models.ProductUpdate{
		Title:     &title,
		Images:    &images,
		CostPrice: &costPrice,
		SellPrice: &sellPrice,
		Stock:     &stock,
		DarazLink: &link,
	})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Updated %s (%s)\n", p.Title, p.ID)
	return nil
}

// UpdateStock changes only the stock of one product, the most frequent edit.
func (a *App) UpdateStock(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	// ownership check before the blind update
	current, err := a.productService.Get(ctx, a.user.ID, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	stock, err := GetInt(a.reader, "Enter new stock quantity", current.Stock, os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.productService.Update(ctx, id, models.ProductUpdate{Stock: &stock})
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("%s now has %d in stock.\n", p.Title, p.Stock)
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id to delete", os.Stdout)
	if err != nil {
		return err
	}

	// resolve through the owner check first: a foreign id must not be deletable
	if _, err := a.productService.Get(ctx, a.user.ID, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if err := a.productService.Delete(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
