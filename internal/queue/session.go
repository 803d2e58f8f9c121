package queue

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-waitroom/internal/adapter"
	"github.com/MKhiriev/go-waitroom/models"
)

const (
	enterPath  = "/queue/enter"
	statusPath = "/queue/status"
)

func enterRequest(activityID, user, device string) adapter.Request {
	return adapter.Request{
		Method: http.MethodPost,
		Path:   enterPath,
		Payload: models.EnterRequest{
			ActivityID:       activityID,
			UserIdentifier:   user,
			DeviceIdentifier: device,
		},
	}
}

func statusRequest(req models.StatusRequest) adapter.Request {
	return adapter.Request{
		Method: http.MethodGet,
		Path:   statusPath,
		Query: url.Values{
			"activity_id":     {req.ActivityID},
			"sequence_number": {strconv.FormatInt(req.SequenceNumber, 10)},
			"session_id":      {req.SessionID},
		},
	}
}

// responseData returns the payload of a completed call or the reason the
// call failed.
func responseData(resp adapter.Response, err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		if msg == "" {
			return nil, ErrRejected
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	return resp.Data, nil
}

func decodeSession(resp adapter.Response, err error) (models.Session, error) {
	data, err := responseData(resp, err)
	if err != nil {
		return models.Session{}, err
	}

	var s models.Session
	if err = json.Unmarshal(data, &s); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if s.SessionID == "" {
		return models.Session{}, fmt.Errorf("%w: missing session id", ErrInvalidSession)
	}
	return s, nil
}

// decodeStatus decodes a status payload and checks that it belongs to held.
// Empty correlation fields are accepted.
func decodeStatus(resp adapter.Response, err error, held models.Session) (models.QueueStatus, error) {
	data, err := responseData(resp, err)
	if err != nil {
		return models.QueueStatus{}, err
	}

	var st models.QueueStatus
	if len(data) > 0 {
		if err = json.Unmarshal(data, &st); err != nil {
			return models.QueueStatus{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
		}
	}

	if st.SessionID != "" && st.SessionID != held.SessionID {
		return models.QueueStatus{}, fmt.Errorf("%w: got session %q, hold %q", ErrSessionMismatch, st.SessionID, held.SessionID)
	}
	if st.SequenceNumber != 0 && st.SequenceNumber != held.SequenceNumber {
		return models.QueueStatus{}, fmt.Errorf("%w: got sequence %d, hold %d", ErrSessionMismatch, st.SequenceNumber, held.SequenceNumber)
	}
	return st, nil
}
