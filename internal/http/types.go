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

type Server struct {
	Store          club.ClubStore
	Stats          *stats.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
