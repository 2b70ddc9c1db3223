package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"smart-shopping-list/internal/api/handlers"
	"smart-shopping-list/internal/api/routes"
	"smart-shopping-list/internal/middleware"
	"smart-shopping-list/internal/utils"
	"smart-shopping-list/internal/utils/mailing"
	"smart-shopping-list/pkg/item"
	"smart-shopping-list/pkg/list"
)

func NewApp(db *gorm.DB, cfg *utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware(cfg.APIKey)
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	mailer := mailing.NewMailer(mailing.MailConfig{
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPSender:   cfg.SMTPSenderName,
		SMTPEmail:    cfg.SMTPAuthEmail,
		SMTPPassword: cfg.SMTPAuthPassword,
	})

	// Repository
	listRepository := list.NewListRepository(db)
	itemRepository := item.NewItemRepository(db)

	// Service
	listService := list.NewListService(listRepository, mailer, cfg.AppURL)
	itemService := item.NewItemService(itemRepository, listRepository)

	// Handler
	listHandler := handlers.NewListHandler(listService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		ListHandler: listHandler,
		ItemHandler: itemHandler,
		Middleware:  middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
