package main

import (
	"log"

	"github.com/ajitashwath/dare-exchange/config"
	"github.com/ajitashwath/dare-exchange/database"
	_ "github.com/ajitashwath/dare-exchange/docs"
	"github.com/ajitashwath/dare-exchange/middleware"
	v1 "github.com/ajitashwath/dare-exchange/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Dare Exchange API
// @version 1.0
// @description REST API for the community dare submission platform
// @BasePath /api/v1
// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
func main() {
	config.LoadConfig()

	database.InitDB()
	database.InitCache()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientUrl},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Key"},
		AllowCredentials: true,
	}))

	v1.Register(r)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Periodic memory and goroutine gauges
	go middleware.UpdateSystemMetrics()

	log.Printf("Server listening on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
