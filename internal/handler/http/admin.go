package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/service"
	"github.com/MKhiriev/go-waitroom/internal/utils"
	"github.com/MKhiriev/go-waitroom/models"
)

const activityIDParam = "activityID"

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityRequest
	if !decodeAdminBody(w, r, &req) {
		return
	}

	activity, err := h.services.AdminService.CreateActivity(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteCreated(w, r, models.NewActivityView(activity))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.services.AdminService.ListActivities(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	views := make([]models.ActivityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, models.NewActivityView(a))
	}
	utils.WriteSuccess(w, r, views)
}

func (h *Handler) activityStatus(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.AdminService.ActivityStatus(r.Context(), chi.URLParam(r, activityIDParam))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, r, report)
}

func (h *Handler) updateActivity(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateActivityRequest
	if !decodeAdminBody(w, r, &req) {
		return
	}

	activity, err := h.services.AdminService.UpdateActivity(r.Context(), chi.URLParam(r, activityIDParam), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, r, models.NewActivityView(activity))
}

// decodeAdminBody rejects unknown fields so a misspelt key cannot silently
// leave a setting unchanged.
func decodeAdminBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid admin request body")
		writeError(w, r, fmt.Errorf("%w: %s", service.ErrInvalidRequest, err.Error()))
		return false
	}
	return true
}
