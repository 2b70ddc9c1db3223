package item

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smart-shopping-list/domain"
	"smart-shopping-list/entities"
	"smart-shopping-list/pkg/category"
	"smart-shopping-list/pkg/list"
)

type (
	ItemService interface {
		AddItem(ctx context.Context, req domain.AddGroceryItemRequest) (domain.GroceryItemResponse, error)
		GetItems(ctx context.Context, listID string) ([]domain.GroceryItemResponse, error)
		UpdateItem(ctx context.Context, id int64, req domain.UpdateGroceryItemRequest) (domain.GroceryItemResponse, error)
		DeleteItem(ctx context.Context, id int64) error
	}

	itemService struct {
		itemRepository ItemRepository
		listRepository list.ListRepository
	}
)

func NewItemService(itemRepository ItemRepository, listRepository list.ListRepository) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		listRepository: listRepository,
	}
}

func (s *itemService) AddItem(ctx context.Context, req domain.AddGroceryItemRequest) (domain.GroceryItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.GroceryItemResponse{}, domain.ErrItemNameRequired
	}
	if req.Quantity < 0 {
		return domain.GroceryItemResponse{}, domain.ErrInvalidQuantity
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	listUUID, err := uuid.Parse(req.ListID)
	if err != nil {
		return domain.GroceryItemResponse{}, domain.ErrParseUUID
	}

	// The list must exist before the insert so a dangling list_id surfaces
	// as a not-found error rather than a raw constraint violation.
	if _, err := s.listRepository.GetListByID(ctx, req.ListID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrListNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	groceryItem := &entities.GroceryItem{
		ListID:   listUUID,
		Name:     name,
		Quantity: quantity,
		Category: category.Categorize(name),
	}

	if err := s.itemRepository.AddItem(ctx, groceryItem); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return itemResponse(groceryItem), nil
}

func (s *itemService) GetItems(ctx context.Context, listID string) ([]domain.GroceryItemResponse, error) {
	if _, err := uuid.Parse(listID); err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.itemRepository.GetItemsByList(ctx, listID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, groceryItem := range items {
		response = append(response, itemResponse(groceryItem))
	}
	return response, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, req domain.UpdateGroceryItemRequest) (domain.GroceryItemResponse, error) {
	groceryItem, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.GroceryItemResponse{}, domain.ErrItemNameRequired
		}
		groceryItem.Name = name
		groceryItem.Category = category.Categorize(name)
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return domain.GroceryItemResponse{}, domain.ErrInvalidQuantity
		}
		groceryItem.Quantity = *req.Quantity
	}
	if req.Bought != nil {
		groceryItem.Bought = *req.Bought
	}

	if err := s.itemRepository.UpdateItem(ctx, groceryItem); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return itemResponse(groceryItem), nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	deleted, err := s.itemRepository.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func itemResponse(item *entities.GroceryItem) domain.GroceryItemResponse {
	return domain.GroceryItemResponse{
		ID:        strconv.FormatInt(item.ID, 10),
		ListID:    item.ListID.String(),
		Name:      item.Name,
		Quantity:  item.Quantity,
		Category:  item.Category,
		Bought:    item.Bought,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
