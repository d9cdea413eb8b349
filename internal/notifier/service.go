package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/holyweird/storefront/internal/events"
	kafkax "github.com/holyweird/storefront/internal/kafka"
	"github.com/holyweird/storefront/internal/redisx"
)

// Service turns order and lead events into customer/team notifications.
// Delivery is currently a structured log line; the email provider hookup
// slots in behind notify().
type Service struct {
	Redis       *redis.Client
	ServiceName string
}

// HandleEvent is attached as the consumer handler for all three topics.
func (s *Service) HandleEvent(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}

	if s.Redis != nil {
		dkey := fmt.Sprintf(redisx.KeyDedup, "notifier", env.EventID)
		exists, _ := redisx.Exists(ctx, s.Redis, dkey)
		if exists {
			return nil
		}
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	switch env.EventType {
	case events.EventOrderPaid:
		p, err := kafkax.UnwrapPayload[events.OrderPaidPayload](env.Payload)
		if err != nil {
			return err
		}
		s.notify("order confirmation", p.Email,
			fmt.Sprintf("order %s paid, total %dp", p.OrderID, p.TotalPence))
	case events.EventOrderCancelled:
		p, err := kafkax.UnwrapPayload[events.OrderCancelledPayload](env.Payload)
		if err != nil {
			return err
		}
		s.notify("order cancelled", "",
			fmt.Sprintf("order %s cancelled: %s", p.OrderID, p.Reason))
	case events.EventLeadReceived:
		p, err := kafkax.UnwrapPayload[events.LeadReceivedPayload](env.Payload)
		if err != nil {
			return err
		}
		s.notify("lead follow-up", p.Email,
			fmt.Sprintf("new %s lead %s", p.RequestType, p.LeadID))
	default:
		// other producers may share these topics later; ignore
	}
	return nil
}

func (s *Service) notify(kind, recipient, detail string) {
	if recipient == "" {
		recipient = "team@holyweird.example"
	}
	log.Printf("[%s] %s -> %s: %s", s.ServiceName, kind, recipient, detail)
}
