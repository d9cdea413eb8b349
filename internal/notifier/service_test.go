package notifier

import (
	"context"
	"encoding/json"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holyweird/storefront/internal/events"
)

func TestHandleEvent(t *testing.T) {
	s := &Service{ServiceName: "notifier-test"}

	env, err := events.NewEnvelope(events.EventOrderPaid, "test", "o1", events.OrderPaidPayload{
		OrderID: "o1", SessionID: "cs_1", Email: "a@b.c", TotalPence: 4150,
	})
	require.NoError(t, err)
	b, err := json.Marshal(env)
	require.NoError(t, err)

	assert.NoError(t, s.HandleEvent(context.Background(), kafkago.Message{Value: b}))
}

func TestHandleEvent_UnknownTypeIgnored(t *testing.T) {
	s := &Service{ServiceName: "notifier-test"}

	env, err := events.NewEnvelope("SomethingElse", "test", "", map[string]string{"k": "v"})
	require.NoError(t, err)
	b, err := json.Marshal(env)
	require.NoError(t, err)

	assert.NoError(t, s.HandleEvent(context.Background(), kafkago.Message{Value: b}))
}

func TestHandleEvent_BadPayload(t *testing.T) {
	s := &Service{ServiceName: "notifier-test"}
	assert.Error(t, s.HandleEvent(context.Background(), kafkago.Message{Value: []byte("not json")}))
}
