package eventbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

const adminTimeout = 30 * time.Second

// EnsureTopic은 토픽이 없으면 생성합니다. 이미 존재하는 토픽은 성공으로 간주합니다.
func EnsureTopic(ctx context.Context, brokers string, topic Topic, partitions int) error {
	admin, err := kafka.NewAdminClient(&kafka.ConfigMap{"bootstrap.servers": brokers})
	if err != nil {
		return fmt.Errorf("create kafka admin client: %w", err)
	}
	defer admin.Close()

	ctx, cancel := context.WithTimeout(ctx, adminTimeout)
	defer cancel()

	results, err := admin.CreateTopics(ctx, []kafka.TopicSpecification{topicSpec(topic, partitions)})
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic.Base(), err)
	}
	return topicResultsError(results)
}

// topicSpec 복제 계수 1 은 단일 브로커 개발 환경 기준이다.
func topicSpec(topic Topic, partitions int) kafka.TopicSpecification {
	return kafka.TopicSpecification{
		Topic:             topic.Base(),
		NumPartitions:     max(partitions, 1),
		ReplicationFactor: 1,
	}
}

func topicResultsError(results []kafka.TopicResult) error {
	var errs []error
	for _, r := range results {
		switch r.Error.Code() {
		case kafka.ErrNoError, kafka.ErrTopicAlreadyExists:
		default:
			errs = append(errs, fmt.Errorf("topic %s: %w", r.Topic, r.Error))
		}
	}
	return errors.Join(errs...)
}
