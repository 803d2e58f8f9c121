package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-waitroom/internal/utils"
	"github.com/MKhiriev/go-waitroom/models"
)

const (
	healthRoute              = "/api/v1/health"
	queueEnterRoute          = "/api/v1/queue/enter"
	queueStatusRoute         = "/api/v1/queue/status"
	adminActivitiesRoute     = "/api/v1/admin/activities"
	adminActivityRoute       = adminActivitiesRoute + "/{" + activityIDParam + "}"
	adminActivityStatusRoute = adminActivityRoute + "/status"
	metricsRoute             = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		withGZipRequest,
		middleware.Compress(compressionLevel, "application/json"),
	)

	router.Get(healthRoute, h.health)
	router.Post(queueEnterRoute, h.enterQueue)
	router.Get(queueStatusRoute, h.queueStatus)

	router.Post(adminActivitiesRoute, h.createActivity)
	router.Get(adminActivitiesRoute, h.listActivities)
	router.Get(adminActivityStatusRoute, h.activityStatus)
	router.Put(adminActivityRoute, h.updateActivity)

	router.Method(http.MethodGet, metricsRoute, h.metrics.Handler())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteFailure(w, r, http.StatusNotFound, models.CodeNotFound, "route not found")
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
