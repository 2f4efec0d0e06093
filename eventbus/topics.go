package eventbus

// DefaultTopicName 설정에 토픽이 비어 있을 때 사용한다.
const DefaultTopicName = "blog-api.events"

// TopicFor는 설정된 토픽을 반환하고, 비어 있으면 DefaultTopicName을 쓴다.
func TopicFor(name string) Topic {
	if name == "" {
		name = DefaultTopicName
	}
	return NewTopic(name)
}
