package main

import (
	"log"
	"os"

	"blogly/database"
	"blogly/handlers"
	"blogly/store"
	"blogly/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	db, err := database.Connect(database.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	router := gin.Default()
	router.SetHTMLTemplate(web.Templates())

	secret := getEnv("SESSION_SECRET", "blogly-dev-secret")
	router.Use(sessions.Sessions("blogly_session", cookie.NewStore([]byte(secret))))

	h := handlers.New(store.New(db))
	h.Register(router)

	addr := getEnv("ADDR", ":8080")
	log.Println("Blogly starting on " + addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
