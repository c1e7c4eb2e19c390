package main

import (
	"os"
	"path/filepath"

	"github.com/dycart/fleet-backoffice/internal/config"
	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/store"
	"github.com/dycart/fleet-backoffice/pkg/logger"
)

// Materializes the seed data files under DATA_DIR without starting the
// API. Useful for demos and for resetting a broken data directory.
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	if err := os.RemoveAll(cfg.Data.Dir); err != nil {
		logger.Fatalf("clear data dir %s: %v", cfg.Data.Dir, err)
	}

	courses, err := store.New(model.GolfCourseStore(filepath.Join(cfg.Data.Dir, "golf_courses_data.json")))
	if err != nil {
		logger.Fatalf("golf-course store: %v", err)
	}
	carts, err := store.New(model.CartStore(filepath.Join(cfg.Data.Dir, "carts_data.json")))
	if err != nil {
		logger.Fatalf("cart store: %v", err)
	}
	cartModels, err := store.New(model.CartModelStore(filepath.Join(cfg.Data.Dir, "cart_models_data.json")))
	if err != nil {
		logger.Fatalf("cart-model store: %v", err)
	}
	maps, err := store.New(model.MapStore(filepath.Join(cfg.Data.Dir, "maps_data.json")))
	if err != nil {
		logger.Fatalf("map store: %v", err)
	}
	users, err := store.New(model.UserStore(filepath.Join(cfg.Data.Dir, "users_data.json")))
	if err != nil {
		logger.Fatalf("user store: %v", err)
	}

	logger.Infof("seeded %s: %d golf courses, %d carts, %d cart models, %d maps, %d users",
		cfg.Data.Dir, courses.Size(), carts.Size(), cartModels.Size(), maps.Size(), users.Size())
}
