package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/neokudilonga-dev/neokudilonga-api/auth"
	productcontroller "github.com/neokudilonga-dev/neokudilonga-api/controllers/product"
	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"github.com/neokudilonga-dev/neokudilonga-api/routes"
	"github.com/neokudilonga-dev/neokudilonga-api/storage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	ctx := context.Background()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Publisher{},
		&models.Product{},
		&models.ProductImage{},
		&models.School{},
		&models.ReadingPlanItem{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Firebase auth for the back office
	if err := auth.Init(ctx); err != nil {
		log.Fatalf("❌ Firebase init failed: %v", err)
	}

	// Image storage backends (R2 for uploads, Firebase for legacy deletes)
	store := storage.New(ctx)

	// Gin setup
	r := gin.Default()

	// Allow large Excel/image uploads
	r.MaxMultipartMemory = 64 << 20 // 64MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Cart-Session"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, store)

	// Nightly catalog snapshot at 2 AM, keep 7 days
	backupDir := os.Getenv("BACKUP_DIR")
	if backupDir == "" {
		backupDir = "./backups"
	}
	go startDailyCatalogBackup(db, backupDir, 7*24*time.Hour, 2, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// allowedOrigins reads the storefront/admin origins from CORS_ORIGINS
// (comma-separated). Defaults to localhost for development.
func allowedOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startDailyCatalogBackup snapshots the full catalog to an Excel workbook
// daily at a fixed hour and removes snapshots older than retention.
func startDailyCatalogBackup(db *gorm.DB, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next catalog backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		if err := backupCatalog(db, backupDir); err != nil {
			log.Printf("❌ Failed to back up catalog: %v", err)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// backupCatalog writes every product to a timestamped .xlsx file.
func backupCatalog(db *gorm.DB, backupDir string) error {
	var products []models.Product
	if err := db.Preload("Images").Preload("Category").Find(&products).Error; err != nil {
		return err
	}

	wb, err := productcontroller.BuildProductsWorkbook(products)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return err
	}

	name := fmt.Sprintf("catalog_%s.xlsx", time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(backupDir, name)
	if err := wb.Save(path); err != nil {
		return err
	}

	log.Printf("✅ Catalog backed up to %s (%d products)", path, len(products))
	return nil
}

// cleanupOldBackups removes snapshot files older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", path)
			}
		}
	}
}
