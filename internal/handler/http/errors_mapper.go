package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/service"
	"github.com/MKhiriev/go-waitroom/internal/utils"
	"github.com/MKhiriev/go-waitroom/models"
)

type errorResponse struct {
	status int
	code   string
}

var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidRequest, errorResponse{http.StatusBadRequest, models.CodeInvalidRequest}},
	{service.ErrActivityNotFound, errorResponse{http.StatusNotFound, models.CodeActivityNotFound}},
	{service.ErrActivityNotActive, errorResponse{http.StatusConflict, models.CodeActivityNotActive}},
	{service.ErrInvalidSequence, errorResponse{http.StatusBadRequest, models.CodeInvalidSequence}},
	{service.ErrActivityAlreadyExists, errorResponse{http.StatusConflict, models.CodeActivityExists}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, models.CodeInternalError}
}

// writeError maps err to a failure envelope. Internal errors are logged
// and answered with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	message := err.Error()
	if resp.status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		message = "internal server error"
	}

	utils.WriteFailure(w, r, resp.status, resp.code, message)
}
