package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	produced   []*kafka.Message
	produceErr error
	// deliveryErr 가 nil 이 아니면 전달 보고서에 실린다.
	deliveryErr error
	// silent 이면 전달 보고서를 보내지 않는다.
	silent  bool
	flushed int
	closed  bool
	pending int
}

func (f *fakeProducer) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	if f.produceErr != nil {
		return f.produceErr
	}
	f.produced = append(f.produced, msg)
	if !f.silent {
		report := *msg
		report.TopicPartition.Error = f.deliveryErr
		deliveryChan <- &report
	}
	return nil
}

func (f *fakeProducer) Flush(timeoutMs int) int {
	f.flushed = timeoutMs
	return f.pending
}

func (f *fakeProducer) Close() { f.closed = true }

func TestKafkaEventBus_Publish(t *testing.T) {
	fp := &fakeProducer{}
	bus := &KafkaEventBus{producer: fp}

	evt, err := NewJSONEvent("evt-1", "post.created", "post-1", map[string]string{"title": "hello"})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), "blog.events", evt))

	require.Len(t, fp.produced, 1)
	msg := fp.produced[0]
	assert.Equal(t, "blog.events", *msg.TopicPartition.Topic)
	assert.Equal(t, kafka.PartitionAny, msg.TopicPartition.Partition)
	assert.Equal(t, []byte("post-1"), msg.Key)
	assert.Equal(t, []kafka.Header{{Key: headerEventType, Value: []byte("post.created")}}, msg.Headers)
	assert.JSONEq(t, `{"id":"evt-1","type":"post.created","payload":{"title":"hello"}}`, string(msg.Value))
}

func TestKafkaEventBus_PublishKeyFallsBackToID(t *testing.T) {
	msg, err := newMessage("blog.events", Event{ID: "evt-9", Type: "tag.created", Payload: []byte(`{}`)})
	require.NoError(t, err)

	assert.Equal(t, []byte("evt-9"), msg.Key)
}

func TestKafkaEventBus_PublishErrors(t *testing.T) {
	evt := Event{ID: "evt-1", Type: "post.created", Payload: []byte(`{}`)}

	t.Run("produce rejected", func(t *testing.T) {
		bus := &KafkaEventBus{producer: &fakeProducer{produceErr: errors.New("queue full")}}
		err := bus.Publish(context.Background(), "blog.events", evt)
		assert.ErrorContains(t, err, "queue full")
	})

	t.Run("delivery failed", func(t *testing.T) {
		deliveryErr := kafka.NewError(kafka.ErrMsgTimedOut, "timed out", false)
		bus := &KafkaEventBus{producer: &fakeProducer{deliveryErr: deliveryErr}}
		err := bus.Publish(context.Background(), "blog.events", evt)
		assert.ErrorContains(t, err, "timed out")
	})

	t.Run("context cancelled before report", func(t *testing.T) {
		bus := &KafkaEventBus{producer: &fakeProducer{silent: true}}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := bus.Publish(ctx, "blog.events", evt)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAwaitDelivery_UnexpectedEvent(t *testing.T) {
	ch := make(chan kafka.Event, 1)
	ch <- kafka.NewError(kafka.ErrAllBrokersDown, "down", false)

	err := awaitDelivery(context.Background(), ch)
	assert.ErrorContains(t, err, "unexpected delivery report")
}

func TestKafkaEventBus_Close(t *testing.T) {
	fp := &fakeProducer{pending: 2}
	bus := &KafkaEventBus{producer: fp}

	bus.Close()

	assert.Equal(t, 5000, fp.flushed)
	assert.True(t, fp.closed)
}
