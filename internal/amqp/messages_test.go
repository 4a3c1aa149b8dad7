package amqp

import (
	"testing"
	"time"
)

func TestQueryExecutedMessageRoundTrip(t *testing.T) {
	msg := NewQueryExecutedMessage("India", "Mint Chip Choco", "year=2022", true, 532000, 180)
	if msg.Timestamp.IsZero() {
		t.Fatalf("expected a timestamp")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := QueryExecutedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Country != "India" || got.Product != "Mint Chip Choco" || got.Filter != "year=2022" {
		t.Fatalf("round trip mangled identity: %+v", got)
	}
	if !got.Found || got.AmountCents != 532000 || got.Boxes != 180 {
		t.Fatalf("round trip mangled outcome: %+v", got)
	}
	if got.Timestamp.Sub(msg.Timestamp) > time.Second {
		t.Fatalf("timestamp drifted: %v vs %v", got.Timestamp, msg.Timestamp)
	}
}

func TestQueryExecutedMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := QueryExecutedMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}
