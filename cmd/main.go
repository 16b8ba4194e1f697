package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskwise/taskwise/broker"
	"taskwise/taskwise/config"
	"taskwise/taskwise/database"
	"taskwise/taskwise/middleware"
	"taskwise/taskwise/routes"
	"taskwise/taskwise/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize the NATS producer; the API stays fully functional when
	// the broker is unreachable, only lifecycle events are dropped.
	if err := broker.InitProducer(cfg); err != nil {
		log.Printf("Warning: Failed to initialize NATS producer: %v", err)
		log.Println("The application will continue, but task lifecycle events will not be published")
	} else {
		defer broker.CloseProducer()
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())

	routes.RegisterHealthRoutes(router, db)
	routes.RegisterTaskRoutes(router, db, services.TaskServiceInstance, services.ClassifierServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		broker.CloseProducer()
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
