package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardform/internal/catalog"
	"boardform/internal/config"
	"boardform/internal/handler"
	"boardform/internal/layout"
	"boardform/internal/middleware"
	"boardform/internal/model"
	"boardform/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := db.AutoMigrate(&model.Board{}, &model.BoardColumn{}, &model.LayoutSetting{}); err != nil {
		return nil, fmt.Errorf("❌ failed to migrate schema: %w", err)
	}

	// Setup Gin
	r := gin.Default()

	// Initialize repositories and engines
	boardRepo := repository.NewBoardRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	mirror := catalog.NewMirrorCatalog(boardRepo)
	layoutManager := layout.NewManager(settingRepo)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(mirror, boardRepo)
	relationHandler := handler.NewRelationHandler(mirror)
	layoutHandler := handler.NewLayoutHandler(layoutManager)

	// Public routes
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes - require a host-issued token
	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Board routes
		authorized.GET("/boards/:id/columns", boardHandler.GetColumns)
		authorized.GET("/boards/:id/relations", relationHandler.GetRelations)

		// Layout routes - reads for every viewer
		authorized.GET("/instances/:id/layout", layoutHandler.GetLayout)
		authorized.GET("/instances/:id/columns/:column_id/assigned", layoutHandler.ColumnAssigned)
		authorized.POST("/instances/:id/items", layoutHandler.CreateItem)

		// Mutations - offered only to privileged viewers
		admin := authorized.Group("/")
		admin.Use(middleware.RequirePrivileged())
		{
			admin.PUT("/boards/:id", boardHandler.SyncBoard)
			admin.POST("/instances/:id/sections", layoutHandler.CreateSection)
			admin.DELETE("/instances/:id/sections/:section_id", layoutHandler.DeleteSection)
			admin.POST("/instances/:id/sections/:section_id/fields", layoutHandler.AssignColumn)
			admin.DELETE("/instances/:id/sections/:section_id/fields/:field_id", layoutHandler.RemoveField)
			admin.POST("/instances/:id/layout/save", layoutHandler.SaveLayout)
			admin.POST("/instances/:id/layout/cancel", layoutHandler.CancelLayout)
		}
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
