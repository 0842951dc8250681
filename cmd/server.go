package cmd

import (
	"kpoller/internal/handlers"
	"kpoller/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	DB                *gorm.DB
	BoxService        services.BoxService
	BoxHandler        *handlers.BoxHandler
	SubscriberService services.SubscriberService
	SubscriberHandler *handlers.SubscriberHandler
	IngestService     services.IngestService
	LogService        services.LogService
	PollerService     *services.Poller
}

func NewServer(
	db *gorm.DB,
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	subscriberService services.SubscriberService,
	subscriberHandler *handlers.SubscriberHandler,
	ingestService services.IngestService,
	logService services.LogService,
	pollerService *services.Poller,
) *Server {
	return &Server{
		DB:                db,
		BoxService:        boxService,
		BoxHandler:        boxHandler,
		SubscriberService: subscriberService,
		SubscriberHandler: subscriberHandler,
		IngestService:     ingestService,
		LogService:        logService,
		PollerService:     pollerService,
	}
}
