package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v79"

	"github.com/hedibld92/margueritecookie/cart"
	orderControllers "github.com/hedibld92/margueritecookie/controllers/order"
	"github.com/hedibld92/margueritecookie/middleware"
	"github.com/hedibld92/margueritecookie/routes"
	"github.com/hedibld92/margueritecookie/session"
	"github.com/hedibld92/margueritecookie/store"
)

func main() {
	log.Println("✅ Starting Cookie Bliss API...")

	// Load environment variables
	_ = godotenv.Load()

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	// Stores
	dataDir := getenvDefault("DATA_DIR", "./data")
	cookieStore := store.NewCookieStore(filepath.Join(dataDir, "cookies.json"))
	contentStore := store.NewContentStore(filepath.Join(dataDir, "site-content.json"))
	orderStore := store.NewOrderStore()

	// Sessions (redis when configured, in-memory otherwise)
	sessions := initSessionStore()

	cartService := cart.NewService(cookieStore, sessions)
	orderHub := orderControllers.NewHub()

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	// CORS settings: the storefront SPA sends the session cookie cross-origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getenvDefault("CORS_ORIGIN", "http://localhost:5173")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", getenvDefault("UPLOAD_DIR", "./public/uploads"))

	// Every request gets a session id
	r.Use(middleware.EnsureSession())

	// Back up the flat-file data at 2 AM daily, keep 4 days of backups
	go startDailyBackupAtFixedTime(dataDir, getenvDefault("BACKUP_DIR", "./backup/data"), 4*24*time.Hour, 2, 0)

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Cookies:  cookieStore,
		Content:  contentStore,
		Orders:   orderStore,
		Sessions: sessions,
		Cart:     cartService,
		OrderHub: orderHub,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initSessionStore connects to redis when REDIS_HOST is set, falling back to
// the in-memory store so the shop still runs without one.
func initSessionStore() session.Store {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("ℹ️ REDIS_HOST not set, using in-memory sessions")
		return session.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + getenvDefault("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable (%v), falling back to in-memory sessions", err)
		return session.NewMemoryStore()
	}

	log.Println("✅ Sessions backed by redis")
	return session.NewRedisStore(client)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
