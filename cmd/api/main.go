package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/hirewire/employment-api/internal/config"
	"github.com/hirewire/employment-api/internal/router"
	"github.com/hirewire/employment-api/internal/store"
)

func main() {
	// 1. Load Environment Variables (.env is optional)
	_ = godotenv.Load()
	cfg := config.Load()

	// 2. Datastore: one JSON document on disk, created empty on first run
	st := store.New(cfg.DBFile)
	if err := st.Bootstrap(); err != nil {
		log.Fatal("Failed to prepare datastore: ", err)
	}

	// 3. Demo listener (API-key gate) runs beside the main API
	demo := router.NewDemo(cfg.APIKey)
	go func() {
		log.Printf("Demo server running on http://localhost:%s", cfg.DemoPort)
		if err := demo.Run(":" + cfg.DemoPort); err != nil {
			log.Fatal("Demo server failed to start: ", err)
		}
	}()

	// 4. Main CRUD API
	api := router.New(st)
	log.Printf("🚀 Employment API running on http://localhost:%s", cfg.Port)
	if err := api.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
