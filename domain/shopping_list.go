package domain

import (
	"errors"
	"time"
)

const DefaultListName = "My Grocery List"

var (
	MessageSuccessDeleteList = "List deleted successfully"
	MessageSuccessShareList  = "Share link sent successfully"

	MessageFailedCreateList = "failed to create shopping list"
	MessageFailedGetList    = "failed to retrieve shopping list"
	MessageFailedDeleteList = "failed to delete shopping list"
	MessageFailedShareList  = "failed to share shopping list"

	ErrListNotFound = errors.New("shopping list not found")
)

type (
	CreateListRequest struct {
		Name string `json:"name" validate:"omitempty,max=100"`
	}

	ShareListRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ShoppingListResponse struct {
		ID        string                `json:"id"`
		Name      string                `json:"name"`
		ShareCode string                `json:"share_code"`
		IsPublic  bool                  `json:"is_public"`
		CreatedAt time.Time             `json:"created_at"`
		Items     []GroceryItemResponse `json:"items,omitempty"`
	}
)
