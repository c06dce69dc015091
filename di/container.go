package di

import (
	"log"

	services "github.com/GianniLaBamba/aoristic-kkf/service"
)

// Container holds all application dependencies.
type Container struct {
	SummaryService  *services.SummaryService
	AoristicService *services.AoristicService
}

// NewContainer initializes and wires up all dependencies.
func NewContainer() *Container {
	log.Printf("initializing container")

	summaryService := services.NewSummaryService()
	aoristicService := services.NewAoristicService(summaryService)

	return &Container{
		SummaryService:  summaryService,
		AoristicService: aoristicService,
	}
}
