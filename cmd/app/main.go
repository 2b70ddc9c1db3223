package main

import (
	"log"

	"smart-shopping-list/cmd/config"
	migration "smart-shopping-list/cmd/database/migrate"
	"smart-shopping-list/internal/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db, cfg)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
