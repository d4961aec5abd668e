package main

import (
	"log"

	"github.com/joho/godotenv"

	"go-apparel-api/internal/app"
	"go-apparel-api/internal/bootstrap"
)

func main() {
	_ = godotenv.Load()

	logger, err := bootstrap.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := app.RunConsumer(); err != nil {
		log.Fatal(err)
	}
}
