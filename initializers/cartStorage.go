package initializers

import (
	"fmt"
	"log"
	"os"

	"github.com/sahil-jamadar/new-couture-project/storage"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// OpenCartStorage picks the key-value backend the cart persists through.
// With no CART_STORE configured, carts live in process memory only.
func OpenCartStorage() (storage.Store, error) {
	switch backend := os.Getenv("CART_STORE"); backend {
	case "mysql":
		db, err := gorm.Open(mysql.Open(os.Getenv("DB_URL")), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&storage.Record{}); err != nil {
			return nil, fmt.Errorf("failed to migrate cart storage: %w", err)
		}
		log.Println("Cart storage synced with database.")
		return storage.NewMySQL(db), nil
	case "redis":
		store, err := storage.NewRedis(os.Getenv("REDIS_URL"))
		if err != nil {
			return nil, err
		}
		log.Println("Cart storage connected to Redis.")
		return store, nil
	case "", "memory":
		log.Println("CART_STORE not set, keeping carts in process memory.")
		return storage.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown CART_STORE backend %q", backend)
	}
}
