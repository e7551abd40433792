package main

import (
	"log"

	"github.com/joho/godotenv"

	"itacatech/internal/app"
)

// @title           ItacaTech Portal API
// @version         1.0
// @description     Operations backend for the ItacaTech sales outsourcing portal.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[main] no .env file, using environment")
	}
	app.Run()
}
