package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingList struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"default:'My Grocery List'" json:"name"`
	ShareCode string    `gorm:"uniqueIndex" json:"share_code"`
	IsPublic  bool      `gorm:"default:true" json:"is_public"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	Items []GroceryItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
