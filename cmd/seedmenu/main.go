// cmd/seedmenu/main.go — seeds a demo menu for local development.
// Usage: go run cmd/seedmenu/main.go
package main

import (
	"fmt"
	"log"

	"foodmenu/internal/config"
	"foodmenu/internal/infra"
	"foodmenu/internal/model"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DSN())
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	categories := []model.Category{
		{Name: "Drinks", Description: strPtr("Cold and hot beverages")},
		{Name: "Mains", Description: strPtr("Main courses")},
		{Name: "Desserts", Description: strPtr("Sweet endings")},
	}
	for i := range categories {
		if err := db.Where("name = ?", categories[i].Name).
			FirstOrCreate(&categories[i]).Error; err != nil {
			log.Fatalf("seed category %q: %v", categories[i].Name, err)
		}
	}

	items := []model.Item{
		{CategoryID: categories[0].ID, Name: "Cola", Price: decimal.NewFromFloat(1.50), Rating: 4.2, IsActive: true},
		{CategoryID: categories[0].ID, Name: "Espresso", Price: decimal.NewFromFloat(2.20), Rating: 4.8, IsActive: true},
		{CategoryID: categories[1].ID, Name: "Margherita Pizza", Price: decimal.NewFromFloat(9.90), Rating: 4.5, IsActive: true},
		{CategoryID: categories[2].ID, Name: "Tiramisu", Price: decimal.NewFromFloat(5.50), Rating: 4.9, IsActive: true},
	}
	for i := range items {
		if err := db.Where("category_id = ? AND name = ?", items[i].CategoryID, items[i].Name).
			FirstOrCreate(&items[i]).Error; err != nil {
			log.Fatalf("seed item %q: %v", items[i].Name, err)
		}
	}

	var catCount, itemCount int64
	db.Model(&model.Category{}).Count(&catCount)
	db.Model(&model.Item{}).Count(&itemCount)
	fmt.Printf("seeded: %d categories, %d items\n", catCount, itemCount)
}
