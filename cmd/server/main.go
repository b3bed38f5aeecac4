package main

import (
	"log"

	"github.com/joho/godotenv"

	"pspk/internal/app"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	app.Run()
}
