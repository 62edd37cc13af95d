package amqp

import (
	"encoding/json"
	"time"

	"voicespend/internal/core"
)

// RecordMirrorMessage carries a full ledger record to the mirror worker.
// The bot and the worker share no database, so the message is the record
// itself rather than a reference to one.
type RecordMirrorMessage struct {
	Record    core.Record `json:"record"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewRecordMirrorMessage(r core.Record) *RecordMirrorMessage {
	return &RecordMirrorMessage{
		Record:    r,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *RecordMirrorMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordMirrorMessageFromJSON creates a message from JSON bytes
func RecordMirrorMessageFromJSON(data []byte) (*RecordMirrorMessage, error) {
	var msg RecordMirrorMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
