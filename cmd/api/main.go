package main

import (
	_ "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/docs"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           DynaMaker QFS Elfsquad Integration API
// @version         1.0
// @description     Triggers DynaMaker QFS drawing-generation jobs for Elfsquad quotations and ingests the asynchronous render results.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
