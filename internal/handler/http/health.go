package http

import (
	"net/http"

	"github.com/MKhiriev/go-waitroom/internal/utils"
)

type healthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	utils.WriteSuccess(w, r, healthResponse{
		Status:        "ok",
		Version:       info.GetAppVersion(r.Context()),
		UptimeSeconds: int64(info.Uptime(r.Context()).Seconds()),
	})
}
