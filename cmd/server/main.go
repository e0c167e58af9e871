package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Karim-Abdelkareem/techmarket/internal/config"
	"github.com/Karim-Abdelkareem/techmarket/internal/database"
	"github.com/Karim-Abdelkareem/techmarket/internal/queue"
	"github.com/Karim-Abdelkareem/techmarket/internal/router"
	"github.com/Karim-Abdelkareem/techmarket/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = web.ErrorHandler

	router.Register(e, cfg, db, rdb)

	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
