package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"smart-shopping-list/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.ShoppingList{}); err != nil {
		log.Fatalf("Error migrating shopping list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GroceryItem{}); err != nil {
		log.Fatalf("Error migrating grocery item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
