package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DoctorZ/chat"
	db "DoctorZ/config/db"
	redis "DoctorZ/config/redis"
	"DoctorZ/jobs"
	"DoctorZ/migrations"
	"DoctorZ/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type serverOptions struct {
	port             string
	registry         *chat.Registry
	jobsHandler      func()
	migrationHandler func()
	preHandler       func(r *gin.Engine)
}

var (
	startServer = serve
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	registry := chat.NewRegistry()
	hub := chat.NewHub(registry)

	options := serverOptions{
		port:     port,
		registry: registry,

		jobsHandler: func() {
			if isTest {
				return
			}
			jobs.SeedDefaultAdmin()
			jobs.StartDailyScheduler()
		},

		migrationHandler: func() {
			if isTest {
				return
			}
			migrations.AddAvailabilityUniqueIndex()
			migrations.BackfillBookingStatus()
		},

		preHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r, hub)
		},
	}
	startServer(options)
}

func serve(options serverOptions) {
	if err := db.Connect(); err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	redis.Connect()

	options.migrationHandler()
	options.jobsHandler()

	r := gin.Default()
	options.preHandler(r)

	server := &http.Server{
		Addr:    ":" + options.port,
		Handler: r,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()
	log.Println("DoctorZ listening on port", options.port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	options.registry.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Println("Error during server shutdown:", err)
	}
	db.Disconnect(ctx)
}
