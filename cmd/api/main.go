package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lifeline-app/lifeline-api/internal/access"
	"github.com/lifeline-app/lifeline-api/internal/auth"
	"github.com/lifeline-app/lifeline-api/internal/handlers"
	"github.com/lifeline-app/lifeline-api/internal/services"
	"github.com/lifeline-app/lifeline-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	log.Printf("MONGO_URI: %s", os.Getenv("MONGO_URI"))
	log.Printf("MONGO_DATABASE: %s", os.Getenv("MONGO_DATABASE"))
	log.Printf("API_PORT: %s", os.Getenv("API_PORT"))
	if os.Getenv("JWT_SECRET") != "" {
		log.Println("JWT_SECRET is SET.")
	} else {
		log.Println("JWT_SECRET is NOT SET.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(os.Getenv("MONGO_URI")))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(os.Getenv("MONGO_DATABASE"))
	log.Println("Successfully connected to MongoDB!")

	// --- Storage & Indexes ---
	st := store.New(db)
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// --- Services & Handlers ---
	verifier := auth.NewVerifier([]byte(os.Getenv("JWT_SECRET")))
	statsSvc := services.NewStatsService(st)
	h := handlers.NewHandler(st, verifier, statsSvc)
	dec := access.New(verifier, st)

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://app.lifeline.example"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
	}

	apiRoutes := r.Group("/api")
	{
		// Profile
		apiRoutes.GET("/me", dec.Query(h.GetMe))
		apiRoutes.PUT("/me", dec.Mutation(h.UpdateMe))

		// Todos
		apiRoutes.GET("/todos", dec.Query(h.ListTodos))
		apiRoutes.POST("/todos", dec.Mutation(h.CreateTodo))
		apiRoutes.PATCH("/todos/:id/complete", dec.Mutation(h.CompleteTodo))
		apiRoutes.DELETE("/todos/:id", dec.Mutation(h.DeleteTodo))

		// Occupations
		apiRoutes.GET("/occupation", dec.Query(h.GetOccupation))
		apiRoutes.PUT("/occupation", dec.Mutation(h.SetOccupation))

		// Admin
		apiRoutes.GET("/admin/stats", dec.AdminQuery(h.GetStats))
		apiRoutes.DELETE("/admin/users/:id", dec.AdminMutation(h.DeleteUser))
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080" // Default port
	}
	log.Printf("Starting server on port %s", port)
	r.Run(":" + port)
}
