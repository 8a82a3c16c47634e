package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"catalog/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int
}

type seedCategory struct {
	name        string
	description string
	products    []seedProduct
}

var seedData = []seedCategory{
	{"Electronics", "Electronic devices and gadgets", []seedProduct{
		{"Laptop", "High-performance laptop computer", "999.99", 50},
		{"Smartphone", "Latest model smartphone", "699.99", 100},
		{"Wireless Earbuds", "Premium wireless earbuds", "149.99", 200},
		{"Gaming Monitor", "27-inch 4K gaming monitor", "449.99", 30},
		{"Wireless Mouse", "Ergonomic wireless mouse", "29.99", 150},
	}},
	{"Clothing", "Apparel and fashion items", []seedProduct{
		{"T-Shirt", "Cotton t-shirt", "19.99", 500},
		{"Jeans", "Denim jeans", "59.99", 150},
		{"Sneakers", "Running sneakers", "89.99", 75},
		{"Winter Jacket", "Insulated winter jacket", "129.99", 35},
	}},
	{"Books", "Books and educational materials", []seedProduct{
		{"Programming Book", "Learn programming fundamentals", "39.99", 80},
		{"Science Fiction Novel", "Bestselling sci-fi novel", "14.99", 120},
		{"Cookbook", "Healthy cooking recipes", "24.99", 60},
		{"Mystery Novel", "Gripping mystery thriller", "18.99", 95},
	}},
	{"Home & Garden", "Home improvement and gardening items", []seedProduct{
		{"Coffee Maker", "Automatic drip coffee maker", "79.99", 40},
		{"Garden Tools Set", "Complete gardening tool kit", "49.99", 25},
		{"Throw Pillow", "Decorative throw pillow", "12.99", 200},
		{"LED Desk Lamp", "Adjustable LED desk lamp", "34.99", 65},
	}},
	{"Sports", "Sports and fitness equipment", []seedProduct{
		{"Yoga Mat", "Non-slip yoga mat", "29.99", 100},
		{"Dumbbells", "Adjustable dumbbells set", "199.99", 20},
		{"Basketball", "Official size basketball", "34.99", 50},
	}},
}

// Seed fills an empty catalog with the demo categories and products. It is a
// no-op once any category exists and reports whether it inserted data.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count categories: %w", err)
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC().Truncate(time.Microsecond)
		for _, sc := range seedData {
			category := models.Category{
				Name:        sc.name,
				Description: stringPtr(sc.description),
				IsActive:    true,
			}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to seed category %s: %w", sc.name, err)
			}

			products := make([]models.Product, 0, len(sc.products))
			for _, sp := range sc.products {
				products = append(products, models.Product{
					Name:          sp.name,
					Description:   stringPtr(sp.description),
					Price:         decimal.RequireFromString(sp.price),
					CategoryID:    category.ID,
					StockQuantity: sp.stock,
					CreatedDate:   now,
					IsActive:      true,
				})
			}
			if err := tx.Create(&products).Error; err != nil {
				return fmt.Errorf("failed to seed products of %s: %w", sc.name, err)
			}
			log.Printf("Seeded category %s with %d products", category.Name, len(products))
		}
		seeded = true
		return nil
	})
	return seeded, err
}

func stringPtr(s string) *string {
	return &s
}
