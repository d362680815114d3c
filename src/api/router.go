package api

import (
	"net/http"

	"wonderpay-server/src/config"
	"wonderpay-server/src/handlers"
	"wonderpay-server/src/middleware"
	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
	"wonderpay-server/src/services"

	"github.com/go-chi/chi/v5"
)

// Services bundles everything the route table needs.
type Services struct {
	Sessions     *monite.SessionManager
	Center       *notify.Center
	Banking      *services.BankingService
	Counterparts *services.CounterpartsService
	Payables     *services.PayablesService
	Payments     *services.PaymentsService
	OCR          *services.OCRService
	Workflows    *services.WorkflowsService
	Analytics    *services.AnalyticsService
	Entity       *services.EntityService
}

func NewRouter(cfg config.Config, svc Services) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.DemoModeMiddleware(cfg.DemoMode))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(cfg, svc.Sessions))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// Session
			r.Post("/session/reset", handlers.ResetSession(svc.Sessions))

			// Bank accounts
			r.Post("/bank-accounts", handlers.CreateBankAccount(svc.Banking))
			r.Get("/bank-accounts", handlers.ListBankAccounts(svc.Banking))
			r.Get("/bank-accounts/{account_id}", handlers.GetBankAccount(svc.Banking))
			r.Delete("/bank-accounts/{account_id}", handlers.DeleteBankAccount(svc.Banking))
			r.Post("/bank-accounts/{account_id}/verify", handlers.VerifyBankAccount(svc.Payments))

			// Counterparts
			r.Post("/counterparts", handlers.CreateCounterpart(svc.Counterparts))
			r.Get("/counterparts", handlers.ListCounterparts(svc.Counterparts))
			r.Get("/counterparts/{counterpart_id}", handlers.GetCounterpart(svc.Counterparts))
			r.Put("/counterparts/{counterpart_id}", handlers.UpdateCounterpart(svc.Counterparts))
			r.Delete("/counterparts/{counterpart_id}", handlers.DeleteCounterpart(svc.Counterparts))

			// Payables
			r.Post("/payables", handlers.CreatePayable(svc.Payables))
			r.Get("/payables", handlers.ListPayables(svc.Payables))
			r.Get("/payables/{payable_id}", handlers.GetPayable(svc.Payables))
			r.Put("/payables/{payable_id}", handlers.UpdatePayable(svc.Payables))

			// Documents
			r.Post("/documents/scan", handlers.ScanDocument(svc.OCR))

			// Payments
			r.Get("/payment-methods", handlers.GetPaymentMethods(svc.Payments))
			r.Post("/payments/submit", handlers.SubmitPayment(svc.Payments))
			r.Post("/payments/{intent_id}/schedule", handlers.SchedulePayment(svc.Payments))
			r.Post("/payments/recurring", handlers.CreateRecurringPayment(svc.Payments))

			// Workflows
			r.Post("/workflows", handlers.CreateWorkflow(svc.Workflows))
			r.Get("/workflows", handlers.ListWorkflows(svc.Workflows))
			r.Put("/workflows/{workflow_id}/status", handlers.UpdateWorkflowStatus(svc.Workflows))

			// Analytics
			r.Get("/analytics/payments", handlers.GetPaymentAnalytics(svc.Analytics))
			r.Get("/analytics/audit-trail", handlers.GetAuditTrail(svc.Analytics))
			r.Post("/exports", handlers.CreateExport(svc.Analytics))

			// Entity
			r.Get("/entity", handlers.GetEntity(svc.Entity))
			r.Put("/entity", handlers.UpdateEntity(svc.Entity))

			// Notifications
			r.Get("/notifications", handlers.ListNotifications(svc.Center))
		})
	})

	return r
}
