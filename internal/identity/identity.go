// Package identity supplies the stable user and device identifiers the queue
// client sends with every enter request.
package identity

import "errors"

// ErrEmptyIdentifier is returned when a provider would yield an empty
// identifier.
var ErrEmptyIdentifier = errors.New("identity: empty identifier")

// Provider supplies two stable opaque strings. Implementations must return
// the same values for the lifetime of the process.
type Provider interface {
	UserIdentifier() string
	DeviceIdentifier() string
}

// Static is a Provider backed by fixed values, typically from configuration.
type Static struct {
	User   string
	Device string
}

// NewStatic returns a Static provider, rejecting empty values.
func NewStatic(user, device string) (Static, error) {
	if user == "" || device == "" {
		return Static{}, ErrEmptyIdentifier
	}
	return Static{User: user, Device: device}, nil
}

func (s Static) UserIdentifier() string   { return s.User }
func (s Static) DeviceIdentifier() string { return s.Device }
