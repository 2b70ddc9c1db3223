package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"smart-shopping-list/domain"
	"smart-shopping-list/internal/api/presenters"
	"smart-shopping-list/pkg/list"
)

type (
	ListHandler interface {
		CreateList(c *fiber.Ctx) error
		GetListByShareCode(c *fiber.Ctx) error
		DeleteList(c *fiber.Ctx) error
		ShareList(c *fiber.Ctx) error
	}

	listHandler struct {
		listService list.ListService
		validator   *validator.Validate
	}
)

func NewListHandler(listService list.ListService, validator *validator.Validate) ListHandler {
	return &listHandler{
		listService: listService,
		validator:   validator,
	}
}

func (h *listHandler) CreateList(c *fiber.Ctx) error {
	req := new(domain.CreateListRequest)

	// An empty body is fine: the list gets the default name.
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest)
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateList, err)
	}

	res, err := h.listService.CreateList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedCreateList, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *listHandler) GetListByShareCode(c *fiber.Ctx) error {
	shareCode := c.Params("share_code")

	res, err := h.listService.GetListByShareCode(c.Context(), shareCode)
	if err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedGetList, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, res)
}

func (h *listHandler) DeleteList(c *fiber.Ctx) error {
	listID := c.Params("id")

	if err := h.listService.DeleteList(c.Context(), listID); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedDeleteList, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteList)
}

func (h *listHandler) ShareList(c *fiber.Ctx) error {
	listID := c.Params("id")
	req := new(domain.ShareListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequestResponse(c, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedShareList, err)
	}

	if err := h.listService.ShareList(c.Context(), listID, *req); err != nil {
		return presenters.ErrorResponse(c, domain.MessageFailedShareList, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessShareList)
}
