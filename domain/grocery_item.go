package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessDeleteItem = "Item deleted successfully"

	MessageFailedAddItem    = "failed to add grocery item"
	MessageFailedGetItems   = "failed to retrieve grocery items"
	MessageFailedUpdateItem = "failed to update grocery item"
	MessageFailedDeleteItem = "failed to delete grocery item"

	ErrItemNotFound     = errors.New("grocery item not found")
	ErrItemNameRequired = errors.New("item name must not be empty")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)

type (
	AddGroceryItemRequest struct {
		ListID   string `json:"list_id" validate:"required,uuid"`
		Name     string `json:"name" validate:"required"`
		Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	}

	UpdateGroceryItemRequest struct {
		Name     *string `json:"name" validate:"omitempty,min=1"`
		Quantity *int    `json:"quantity" validate:"omitempty,min=1"`
		Bought   *bool   `json:"bought"`
	}

	GroceryItemResponse struct {
		ID        string    `json:"id"`
		ListID    string    `json:"list_id"`
		Name      string    `json:"name"`
		Quantity  int       `json:"quantity"`
		Category  string    `json:"category"`
		Bought    bool      `json:"bought"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
