package models

// EnterRequest is the body of POST /queue/enter.
type EnterRequest struct {
	ActivityID       string `json:"activity_id"`
	UserIdentifier   string `json:"user_identifier"`
	DeviceIdentifier string `json:"device_identifier"`
}

// StatusRequest carries the query parameters of GET /queue/status.
type StatusRequest struct {
	ActivityID     string
	SequenceNumber int64
	SessionID      string
}
