package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/moneysplitter/internal/events"
)

func TestNewMessage(t *testing.T) {
	event := events.LedgerSettled{
		LedgerID: "ledger-1",
		GroupID:  "group-1",
		Payments: []events.Payment{
			{From: "Dave", To: "Bob", Amount: 430.42},
		},
		SettledAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	msg, err := newMessage(event)
	require.NoError(t, err)

	assert.Equal(t, "ledger-1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, events.TypeLedgerSettled, string(msg.Headers[0].Value))

	var decoded events.LedgerSettled
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestNewPublisher(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "settlements")
	assert.Equal(t, "settlements", p.writer.Topic)
	assert.NoError(t, p.Close())
}
