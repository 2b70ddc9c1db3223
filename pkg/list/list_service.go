package list

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"smart-shopping-list/domain"
	"smart-shopping-list/entities"
	"smart-shopping-list/internal/utils/mailing"
)

type (
	ListService interface {
		CreateList(ctx context.Context, req domain.CreateListRequest) (domain.ShoppingListResponse, error)
		GetListByShareCode(ctx context.Context, shareCode string) (domain.ShoppingListResponse, error)
		DeleteList(ctx context.Context, id string) error
		ShareList(ctx context.Context, id string, req domain.ShareListRequest) error
	}

	listService struct {
		listRepository ListRepository
		mailer         mailing.Mailer
		appURL         string
	}
)

func NewListService(listRepository ListRepository, mailer mailing.Mailer, appURL string) ListService {
	return &listService{
		listRepository: listRepository,
		mailer:         mailer,
		appURL:         appURL,
	}
}

// generateShareCode returns an 8-character lowercase hex token.
func generateShareCode() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func (s *listService) CreateList(ctx context.Context, req domain.CreateListRequest) (domain.ShoppingListResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = domain.DefaultListName
	}

	shoppingList := &entities.ShoppingList{
		ID:        uuid.New(),
		Name:      name,
		ShareCode: generateShareCode(),
		IsPublic:  true,
	}

	if err := s.listRepository.CreateList(ctx, shoppingList); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return listResponse(shoppingList), nil
}

func (s *listService) GetListByShareCode(ctx context.Context, shareCode string) (domain.ShoppingListResponse, error) {
	shoppingList, err := s.listRepository.GetListByShareCode(ctx, shareCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListResponse{}, domain.ErrListNotFound
		}
		return domain.ShoppingListResponse{}, err
	}

	res := listResponse(shoppingList)
	res.Items = make([]domain.GroceryItemResponse, 0, len(shoppingList.Items))
	for _, item := range shoppingList.Items {
		res.Items = append(res.Items, itemResponse(&item))
	}
	return res, nil
}

func (s *listService) DeleteList(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	deleted, err := s.listRepository.DeleteList(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrListNotFound
	}
	return nil
}

func (s *listService) ShareList(ctx context.Context, id string, req domain.ShareListRequest) error {
	shoppingList, err := s.listRepository.GetListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListNotFound
		}
		return err
	}

	shareLink := fmt.Sprintf("%s/shared/%s", s.appURL, shoppingList.ShareCode)
	subject := fmt.Sprintf("%s was shared with you", shoppingList.Name)
	body := mailing.ShareListBody(shoppingList.Name, shareLink)

	return s.mailer.Send(req.Email, subject, body)
}

func listResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	return domain.ShoppingListResponse{
		ID:        list.ID.String(),
		Name:      list.Name,
		ShareCode: list.ShareCode,
		IsPublic:  list.IsPublic,
		CreatedAt: list.CreatedAt,
	}
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
