package httpinterface

import (
	"net/http"
	"time"

	"github.com/feevault-network/feevault-daemon/internal/core/application"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Service exposes the module facade and the administrative surface over
// HTTP. The settlement platform drives the trade/claim endpoints, the
// operator CLI drives the rest.
type Service struct {
	rewardSvc   application.RewardService
	operatorSvc application.OperatorService
}

// NewService returns the HTTP interface wired to the application services.
func NewService(
	rewardSvc application.RewardService, operatorSvc application.OperatorService,
) *Service {
	return &Service{
		rewardSvc:   rewardSvc,
		operatorSvc: operatorSvc,
	}
}

// Router builds the chi router with all the endpoints mounted.
func (s *Service) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestLogger)

	router.Route("/v1", func(r chi.Router) {
		r.Post("/trades", s.handleTrade)
		r.Post("/claims", s.handleClaim)
		r.Get("/assets", s.handleListAssets)
		r.Get("/rewards/{asset}/{participant}", s.handlePendingReward)

		r.Route("/operator", func(r chi.Router) {
			r.Post("/claims", s.handleOperatorClaim)
			r.Post("/assets", s.handleSupportAsset)
			r.Post("/ownership", s.handleTransferOwnership)
			r.Get("/withdrawals/{asset}", s.handleListWithdrawals)
		})
	})

	router.Handle("/metrics", promhttp.Handler())

	return router
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start).String(),
		}).Trace("http request")
	})
}
