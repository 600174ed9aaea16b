package main

import (
	"log"

	_ "boardform/docs"
	"boardform/internal/config"
	"boardform/internal/server"
)

// @title           Board Form Layout API
// @version         1.0
// @description     API for board relation discovery and form layout configuration.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
