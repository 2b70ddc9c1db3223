package routes

import (
	"github.com/gofiber/fiber/v2"

	"smart-shopping-list/internal/api/handlers"
	"smart-shopping-list/internal/middleware"
)

type Config struct {
	App         *fiber.App
	ListHandler handlers.ListHandler
	ItemHandler handlers.ItemHandler
	Middleware  middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Lists()
	c.Items()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Lists() {
	lists := c.App.Group("/api/list", c.Middleware.APIKeyMiddleware())

	lists.Post("", c.ListHandler.CreateList)
	lists.Get("/:share_code", c.ListHandler.GetListByShareCode)
	lists.Delete("/:id", c.ListHandler.DeleteList)
	lists.Post("/:id/share", c.ListHandler.ShareList)
}

func (c *Config) Items() {
	items := c.App.Group("/api/items", c.Middleware.APIKeyMiddleware())

	items.Post("", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)
}
