package eventbus

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// NewJSONEvent 생성: payload를 JSON으로 인코딩하여 Event를 구성합니다.
// id가 빈 문자열이면 UUID를 생성합니다. key는 파티션 선택에 쓰이며, 비어 있으면 id를 사용합니다.
func NewJSONEvent(id, eventType, key string, payload any) (Event, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if key == "" {
		key = id
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("payload marshal 실패: %w", err)
	}
	return Event{
		ID:      id,
		Type:    eventType,
		Key:     key,
		Payload: b,
	}, nil
}
