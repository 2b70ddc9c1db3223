package item

import (
	"context"

	"gorm.io/gorm"

	"smart-shopping-list/entities"
)

type (
	ItemRepository interface {
		AddItem(ctx context.Context, item *entities.GroceryItem) error
		GetItemByID(ctx context.Context, id int64) (*entities.GroceryItem, error)
		GetItemsByList(ctx context.Context, listID string) ([]*entities.GroceryItem, error)
		UpdateItem(ctx context.Context, item *entities.GroceryItem) error
		DeleteItem(ctx context.Context, id int64) (int64, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) AddItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id int64) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetItemsByList(ctx context.Context, listID string) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) DeleteItem(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{})
	return res.RowsAffected, res.Error
}
