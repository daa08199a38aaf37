package service

import "github.com/MKhiriev/go-ident-keeper/internal/logger"

// logTracker is the default [Tracker]: events go to the structured log.
type logTracker struct {
	logger *logger.Logger
}

// NewLogTracker constructs a [Tracker] that records events via the supplied
// logger.
func NewLogTracker(logger *logger.Logger) Tracker {
	return &logTracker{logger: logger}
}

// ClientRevoked implements [Tracker].
func (t *logTracker) ClientRevoked(userID, clientID string) {
	t.logger.Warn().
		Str("event", "client_revoked").
		Str("user_id", userID).
		Str("client_id", clientID).
		Msg("registered client removed server-side")
}
