package handlers

import (
	"net/http"

	"github.com/KoshakFSB/WCWD/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

func NewRouter(handler *Handler, secretKey string, admins middleware.AdminChecker) chi.Router {
	r := chi.NewRouter()

	limiter := middleware.NewUserRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.WithLogging())
	r.Use(middleware.WithGzip())
	r.Use(middleware.WithHash(secretKey))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTMiddleware(secretKey))
			r.Use(middleware.RateLimitMiddleware(limiter))

			r.Get("/balance", handler.GetBalance)
			r.Get("/balance/stats", handler.GetStats)
			r.Post("/balance/topup", handler.RequestTopUp)
			r.Get("/referrals", handler.GetReferrals)

			r.Post("/withdrawals", handler.SubmitWithdrawal)
			r.Get("/withdrawals", handler.GetWithdrawals)

			r.Post("/accounts", handler.SubmitAccount)
			r.Get("/accounts", handler.GetUserAccounts)
			r.Post("/accounts/{accountID}/code", handler.UserSubmitCode)
			r.Post("/accounts/{accountID}/entered", handler.UserConfirmEntered)
			r.Post("/accounts/{accountID}/failure", handler.UserReportFailure)

			r.Post("/smswork", handler.SubmitSmsWork)
			r.Get("/smswork", handler.GetSmsWorks)
			r.Post("/smswork/{workID}/proof", handler.AttachSmsProof)
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.JWTMiddleware(secretKey))
		r.Use(middleware.AdminOnly(admins))

		r.Get("/accounts", handler.AdminListAccounts)
		r.Post("/accounts/{accountID}/accept", handler.AdminAcceptAccount)
		r.Post("/accounts/{accountID}/code", handler.AdminSendCode)
		r.Post("/accounts/{accountID}/activate", handler.AdminActivateHold)
		r.Post("/accounts/{accountID}/reject", handler.AdminRejectAccount)
		r.Post("/accounts/{accountID}/fail", handler.AdminFailAccount)

		r.Post("/withdrawals/{requestID}/confirm", handler.AdminConfirmWithdrawal)
		r.Post("/withdrawals/process", handler.AdminProcessBatch)

		r.Get("/smswork", handler.AdminListSmsWorks)
		r.Post("/smswork/{workID}/accept", handler.AdminAcceptSmsWork)
		r.Post("/smswork/{workID}/complete", handler.AdminCompleteSmsWork)

		r.Post("/users/warn", handler.AdminWarnUser)
		r.Post("/users/balance", handler.AdminAdjustBalance)

		r.Get("/admins", handler.AdminListAdmins)
		r.Post("/admins", handler.AdminAddAdmin)
		r.Delete("/admins/{userID}", handler.AdminRemoveAdmin)

		r.Get("/stats", handler.AdminPlatformStats)
		r.Get("/service-status", handler.GetServiceStatus)
		r.Post("/service-status", handler.SetServiceStatus)
	})

	return r
}
