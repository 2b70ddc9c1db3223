package entities

import (
	"github.com/google/uuid"
)

type GroceryItem struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ListID   uuid.UUID `gorm:"type:uuid;not null;index" json:"list_id"`
	Name     string    `gorm:"not null" json:"name"`
	Quantity int       `gorm:"default:1" json:"quantity"`
	Category string    `gorm:"default:'Others'" json:"category"`
	Bought   bool      `gorm:"default:false" json:"bought"`

	List *ShoppingList `gorm:"foreignKey:ListID" json:"-"`
	Timestamp
}
