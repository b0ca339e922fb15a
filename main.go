package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	jwtSecret = []byte(cfg.JWTSecret)

	db, err := InitDB(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	r := NewRouter(cfg, db)

	log.Printf("🚀 Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// NewRouter wires middleware and all route groups onto a gin engine.
func NewRouter(cfg Config, db *sql.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	AuthRoutes(r, db)
	UserRoutes(r, db)
	WorkerRoutes(r, db)
	ViolationRoutes(r, db)
	FrontendRoutes(r, "web")

	return r
}

// FrontendRoutes serves the single-page dashboard. Unknown non-API paths
// fall back to index.html so client-side views survive a reload.
func FrontendRoutes(r *gin.Engine, distDir string) {
	indexPath := filepath.Join(distDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		return
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}

		full := filepath.Join(distDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}

		// SPA fallback.
		c.File(indexPath)
	})
}
