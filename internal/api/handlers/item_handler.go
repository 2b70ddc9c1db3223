package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"smart-shopping-list/domain"
	"smart-shopping-list/internal/api/presenters"
	"smart-shopping-list/pkg/item"
)

type (
	ItemHandler interface {
		AddItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService item.ItemService
		validator   *validator.Validate
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		itemService: itemService,
		validator:   validator,
	}
}

func (h *itemHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddItem, err)
	}

	res, err := h.itemService.AddItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedAddItem, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *itemHandler) GetItems(c *fiber.Ctx) error {
	listID := c.Query("list_id")
	if listID == "" {
		return presenters.BadRequestResponse(c, "list_id query parameter is required")
	}

	items, err := h.itemService.GetItems(c.Context(), listID)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetItems, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, items)
}

func (h *itemHandler) UpdateItem(c *fiber.Ctx) error {
	itemID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.BadRequestResponse(c, "invalid item id")
	}

	req := new(domain.UpdateGroceryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateItem, err)
	}

	res, err := h.itemService.UpdateItem(c.Context(), itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedUpdateItem, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *itemHandler) DeleteItem(c *fiber.Ctx) error {
	itemID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.BadRequestResponse(c, "invalid item id")
	}

	if err := h.itemService.DeleteItem(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteItem, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteItem)
}
