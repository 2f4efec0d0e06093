package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/api/trace"
	"blog-api/logger"
)

const (
	headerRequestID = "X-Request-Id"
	// 클라이언트가 보낸 ID 가 이보다 길면 새로 발급한다.
	maxRequestIDLen = 128
)

// RequestTrace는 모든 요청에 Request ID를 부여하고(쓸 만한 X-Request-Id 가 오면 그대로 사용),
// 요청이 끝나면 한 줄의 완료 로그를 남긴다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		requestID := incomingRequestID(c.GetHeader(headerRequestID))
		c.Request = c.Request.WithContext(trace.WithRequestID(c.Request.Context(), requestID))
		c.Header(headerRequestID, requestID)

		c.Next()

		logger.InfoWithFields("completed request", completedFields(c, requestID, time.Since(started)))
	}
}

func incomingRequestID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxRequestIDLen {
		return trace.GenerateID()
	}
	return id
}

func completedFields(c *gin.Context, requestID string, elapsed time.Duration) logger.Fields {
	fields := logger.Fields{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"duration":   elapsed.String(),
	}
	// 멀티 값 쿼리를 보존하려고 url.Values 그대로 남긴다.
	if q := c.Request.URL.Query(); len(q) > 0 {
		fields["query_params"] = map[string][]string(q)
	}
	if len(c.Errors) > 0 {
		fields["errors"] = c.Errors.String()
	}
	return fields
}
