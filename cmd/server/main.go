package main

import (
	"log"
	"net/http"
	"os"

	"coversheet_backend/internal/config"
	"coversheet_backend/internal/logger"
	"coversheet_backend/internal/middleware"
	"coversheet_backend/internal/routes"
	"coversheet_backend/internal/storage"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	db := config.InitDB()
	loc := config.AppTimezone()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	files, err := storage.NewLocalStore(uploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	r := routes.SetupRouter(db, files, loc, uploadDir)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running at :" + port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
