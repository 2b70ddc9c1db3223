package list

import (
	"context"

	"gorm.io/gorm"

	"smart-shopping-list/entities"
)

type (
	ListRepository interface {
		CreateList(ctx context.Context, list *entities.ShoppingList) error
		GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		GetListByShareCode(ctx context.Context, shareCode string) (*entities.ShoppingList, error)
		DeleteList(ctx context.Context, id string) (int64, error)
	}

	listRepository struct {
		db *gorm.DB
	}
)

func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *listRepository) GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) GetListByShareCode(ctx context.Context, shareCode string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("share_code = ?", shareCode).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteList removes the list and all items bound to it in one transaction.
// It returns the number of list rows removed so the caller can distinguish
// "nothing to delete" from a successful delete.
func (r *listRepository) DeleteList(ctx context.Context, id string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&entities.GroceryItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.ShoppingList{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
