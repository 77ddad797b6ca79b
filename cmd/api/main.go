package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/construmax/inventario-go/internal/config"
	"github.com/construmax/inventario-go/internal/database"
	"github.com/construmax/inventario-go/internal/handlers"
	"github.com/construmax/inventario-go/internal/models"
	"github.com/construmax/inventario-go/internal/utils"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Proveedor{},
		&models.DireccionProveedor{},
		&models.Empresa{},
		&models.TipoDocumentoCompra{},
		&models.DocumentoCompra{},
		&models.DocumentoCompraDetalle{},
		&models.ReferenciaDocumento{},
		&models.Bodega{},
		&models.Pasillo{},
		&models.Estante{},
		&models.Nivel{},
		&models.LogImportacion{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Seed catalogs and the initial admin account
	if err := db.SeedTiposDocumento(); err != nil {
		log.Printf("⚠️ Seed warning: %v", err)
	}
	seedAdmin(db)

	// 5. Set up HTTP router
	router := handlers.NewRouter(db, cfg)

	// 6. Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("🚀 Server starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Close database (this also stops embedded PostgreSQL)
	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}

// seedAdmin creates the initial admin user when the table is empty
func seedAdmin(db *database.DB) {
	var usuarios int64
	if err := db.Model(&models.Usuario{}).Count(&usuarios).Error; err != nil || usuarios > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("⚠️ ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("⚠️ Could not hash admin password: %v", err)
		return
	}

	admin := models.Usuario{
		Username: "admin",
		Password: hash,
		Nombre:   "Administrador",
		Rol:      "admin",
		Activo:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("⚠️ Could not create admin user: %v", err)
		return
	}
	log.Println("✅ Initial admin user created")
}
