package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/service"
	"github.com/MKhiriev/go-waitroom/internal/utils"
	"github.com/MKhiriev/go-waitroom/models"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 1 << 16

func (h *Handler) enterQueue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EnterRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid enter request body")
		writeError(w, r, fmt.Errorf("%w: malformed JSON body", service.ErrInvalidRequest))
		return
	}

	session, err := h.services.QueueService.Enter(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, r, session)
}

func (h *Handler) queueStatus(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := models.StatusRequest{
		ActivityID: query.Get("activity_id"),
		SessionID:  query.Get("session_id"),
	}
	if raw := query.Get("sequence_number"); raw != "" {
		seq, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: sequence_number must be an integer", service.ErrInvalidRequest))
			return
		}
		req.SequenceNumber = seq
	}

	status, err := h.services.QueueService.Status(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, r, status)
}
