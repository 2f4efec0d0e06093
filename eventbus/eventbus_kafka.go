package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"blog-api/logger"
)

const (
	headerEventType = "event_type"
	flushTimeout    = 5 * time.Second
)

// producer 는 *kafka.Producer 중 발행에 필요한 부분이다.
type producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// KafkaEventBus는 confluent-kafka-go Producer로 이벤트를 발행하고
// 메시지마다 브로커 확인을 기다립니다.
type KafkaEventBus struct {
	producer producer
}

func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(producerConfig(brokers))
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	go watchProducerEvents(p.Events())
	return &KafkaEventBus{producer: p}, nil
}

func producerConfig(brokers string) *kafka.ConfigMap {
	return &kafka.ConfigMap{
		"bootstrap.servers":  brokers,
		"acks":               "all",
		"enable.idempotence": true,
		"retries":            5,
		"linger.ms":          5,
	}
}

// watchProducerEvents 는 delivery channel 없이 들어온 보고서와 클라이언트 오류를 기록한다.
func watchProducerEvents(events <-chan kafka.Event) {
	for e := range events {
		switch ev := e.(type) {
		case *kafka.Message:
			if ev.TopicPartition.Error != nil {
				logger.ErrorWithFields("kafka delivery failed", logger.Fields{
					"partition": ev.TopicPartition.String(),
					"error":     ev.TopicPartition.Error.Error(),
				})
			}
		case kafka.Error:
			logger.ErrorWithFields("kafka client error", logger.Fields{
				"code":  ev.Code().String(),
				"error": ev.Error(),
			})
		}
	}
}

// Publish는 토픽에 이벤트를 발행하고 브로커 확인 또는 ctx 종료까지 기다립니다.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	msg, err := newMessage(topic, event)
	if err != nil {
		return err
	}

	// 버퍼 1: ctx 로 먼저 빠져나가도 librdkafka 의 보고서 송신이 막히지 않는다.
	delivery := make(chan kafka.Event, 1)
	if err := k.producer.Produce(msg, delivery); err != nil {
		return fmt.Errorf("produce %s: %w", event.Type, err)
	}
	return awaitDelivery(ctx, delivery)
}

// newMessage는 event.Key(없으면 event.ID)를 메시지 키로 써서
// 같은 문서의 이벤트가 같은 파티션에 들어가게 한다.
func newMessage(topic string, event Event) (*kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", event.ID, err)
	}
	key := event.Key
	if key == "" {
		key = event.ID
	}
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(key),
		Value:          value,
		Headers:        []kafka.Header{{Key: headerEventType, Value: []byte(event.Type)}},
	}, nil
}

func awaitDelivery(ctx context.Context, delivery <-chan kafka.Event) error {
	select {
	case ev := <-delivery:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery report %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("deliver to %s: %w", m.TopicPartition.String(), m.TopicPartition.Error)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close는 남은 메시지를 flushTimeout 동안 플러시한 뒤 Producer를 닫습니다.
func (k *KafkaEventBus) Close() {
	if k.producer == nil {
		return
	}
	if left := k.producer.Flush(int(flushTimeout.Milliseconds())); left > 0 {
		logger.WarnWithFields("kafka producer closed with unflushed messages", logger.Fields{"remaining": left})
	}
	k.producer.Close()
}
