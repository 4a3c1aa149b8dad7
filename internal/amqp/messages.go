package amqp

import (
	"encoding/json"
	"time"
)

// QueryExecutedMessage describes one executed ledger query and its outcome.
// Amount and boxes are zero when the query found nothing.
type QueryExecutedMessage struct {
	Country     string    `json:"country"`
	Product     string    `json:"product"`
	Filter      string    `json:"filter"`
	Found       bool      `json:"found"`
	AmountCents int64     `json:"amount_cents"`
	Boxes       int64     `json:"boxes"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewQueryExecutedMessage creates an event stamped with the current time.
func NewQueryExecutedMessage(country, product, filter string, found bool, amountCents, boxes int64) *QueryExecutedMessage {
	return &QueryExecutedMessage{
		Country:     country,
		Product:     product,
		Filter:      filter,
		Found:       found,
		AmountCents: amountCents,
		Boxes:       boxes,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *QueryExecutedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// QueryExecutedMessageFromJSON creates a message from JSON bytes
func QueryExecutedMessageFromJSON(data []byte) (*QueryExecutedMessage, error) {
	var msg QueryExecutedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
