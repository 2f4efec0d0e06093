package services

import (
	"context"
	"sync"
	"time"

	"blog-api/eventbus"
	"blog-api/events"
	"blog-api/logger"
)

const publishTimeout = 3 * time.Second

// Notifier publishes domain events after a write has been stored.
// Publishing runs in the background; failures are logged and never reported to the caller.
type Notifier struct {
	bus      EventPublisher
	topic    string
	inflight sync.WaitGroup
}

func NewNotifier(bus EventPublisher, topic eventbus.Topic) *Notifier {
	return &Notifier{bus: bus, topic: topic.Base()}
}

// Wait blocks until every publish started so far has finished. Called on shutdown before
// the bus is closed.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.inflight.Wait()
}

func (n *Notifier) notify(ctx context.Context, e events.Event) {
	if n == nil || n.bus == nil {
		return
	}

	base := e.Meta()
	evt, err := eventbus.NewJSONEvent(base.ID, string(base.Type), e.PartitionKey(), e)
	if err != nil {
		logger.WarnWithFields("failed to encode event", logger.Fields{
			"event_type": string(base.Type),
			"error":      err.Error(),
		})
		return
	}

	// Detached from request cancellation: the publish outlives the response.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		defer cancel()
		n.publish(ctx, evt)
	}()
}

func (n *Notifier) publish(ctx context.Context, evt eventbus.Event) {
	if err := n.bus.Publish(ctx, n.topic, evt); err != nil {
		logger.WarnWithFields("failed to publish event", logger.Fields{
			"event_id":   evt.ID,
			"event_type": evt.Type,
			"topic":      n.topic,
			"error":      err.Error(),
		})
	}
}
