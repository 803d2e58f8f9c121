package tui

import (
	"github.com/MKhiriev/go-waitroom/internal/queue"
	"github.com/MKhiriev/go-waitroom/models"
)

type enteredMsg struct {
	session models.Session
}

type statusMsg struct {
	update queue.StatusUpdate
}

type readyMsg struct {
	session models.Session
}

type errorMsg struct {
	err error
}

type stateMsg struct {
	change queue.StateChange
}

type enterDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
