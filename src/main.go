package main

import (
	"log"
	"net/http"

	"wonderpay-server/src/api"
	"wonderpay-server/src/config"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
	"wonderpay-server/src/services"
)

func main() {
	cfg := config.Load()

	center := notify.NewCenter(cfg.NotificationTTL)

	sessions := monite.NewSessionManager(monite.Config{
		APIURL:       cfg.MoniteAPIURL,
		ClientID:     cfg.MoniteClientID,
		ClientSecret: cfg.MoniteClientSecret,
		EntityID:     cfg.MoniteEntityID,
		APIVersion:   cfg.MoniteAPIVersion,
	})

	svc := api.Services{
		Sessions:     sessions,
		Center:       center,
		Banking:      services.NewBankingService(sessions, center),
		Counterparts: services.NewCounterpartsService(sessions, center),
		Payables:     services.NewPayablesService(sessions, center),
		Payments:     services.NewPaymentsService(sessions, center),
		OCR:          services.NewOCRService(sessions, center, services.DefaultOCRPolicy),
		Workflows:    services.NewWorkflowsService(sessions, center),
		Analytics:    services.NewAnalyticsService(sessions, center),
		Entity:       services.NewEntityService(sessions, center),
	}

	router := api.NewRouter(cfg, svc)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
