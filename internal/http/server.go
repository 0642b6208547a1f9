package http

import (
	"net/http"

	"github.com/fenwickcc/pavilion/internal/club"
	"github.com/fenwickcc/pavilion/internal/config"
	"github.com/fenwickcc/pavilion/internal/metrics"
	"github.com/fenwickcc/pavilion/internal/notifier"
	"github.com/fenwickcc/pavilion/internal/pubsub"
	"github.com/fenwickcc/pavilion/internal/stats"
)

func NewServer(store club.ClubStore, statsSvc *stats.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Stats:          statsSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.PlayersHandler(), paramsMiddleware))
	s.Router.Handle("/players/deactivate", Chain(s.DeactivatePlayerHandler(), paramsMiddleware))
	s.Router.Handle("/seasons", Chain(s.SeasonsHandler(), paramsMiddleware))
	s.Router.Handle("/seasons/activate", Chain(s.ActivateSeasonHandler(), paramsMiddleware))
	s.Router.Handle("/roster", Chain(s.RosterHandler(), paramsMiddleware))
	s.Router.Handle("/fixtures", Chain(s.FixturesHandler(), paramsMiddleware))
	s.Router.Handle("/availability", Chain(s.AvailabilityHandler(), paramsMiddleware))
	s.Router.Handle("/practice-sessions", Chain(s.PracticeSessionsHandler(), paramsMiddleware))
	s.Router.Handle("/announce-selection", Chain(s.AnnounceSelectionHandler(), paramsMiddleware))
	s.Router.Handle("/recalculate-stats", Chain(s.RecalculateStatsHandler(), paramsMiddleware))
	s.Router.Handle("/recalculate-stats/async", Chain(s.RecalculateStatsAsyncHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/recalculate-stats", Chain(s.PubSubRecalculateHandler(), paramsMiddleware))
	s.Router.Handle("/player-stats", Chain(s.PlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("/team-stats", Chain(s.TeamStatsHandler(), paramsMiddleware))
	s.Router.Handle("/season-stats", Chain(s.SeasonStatsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
