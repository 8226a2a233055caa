package amqp

import (
	"encoding/json"
	"time"
)

// ExpirationAlertMessage notifies downstream consumers (mail, chat hooks)
// that a deadline is approaching. It carries the derived feed entry, not
// the full record; consumers fetch details themselves if they need more.
type ExpirationAlertMessage struct {
	Kind          string    `json:"kind"` // rental, contract, license
	SourceID      int64     `json:"source_id"`
	Label         string    `json:"label"`
	DueAt         string    `json:"due_at"` // YYYY-MM-DD
	DaysRemaining int       `json:"days_remaining"`
	Urgency       string    `json:"urgency"`
	Timestamp     time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *ExpirationAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpirationAlertMessageFromJSON creates a message from JSON bytes
func ExpirationAlertMessageFromJSON(data []byte) (*ExpirationAlertMessage, error) {
	var msg ExpirationAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
