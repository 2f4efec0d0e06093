package logger

import (
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 애플리케이션 전역에서 사용하는 최소 로거 인터페이스다.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

// Log 는 전역 로거 인스턴스다. Init 전에도 info 레벨로 동작한다.
var Log Logger = NewLogger("info")

// serviceName 은 모든 구조화 로그에 service_name 으로 붙는다.
var serviceName = "blog-api"

// Init 은 전역 로거를 주어진 레벨로 교체한다.
// 알 수 없거나 빈 레벨은 info 로 처리한다.
func Init(level string, service string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	if service != "" {
		serviceName = service
	}
	Log = NewLogger(level)
}

// NewLogger 는 주어진 레벨 이상을 출력하는 gookit/slog JSON 콘솔 로거를 만든다.
func NewLogger(level string) Logger {
	h := handler.NewConsoleHandler(levelsUpTo(slog.LevelByName(level)))
	h.SetFormatter(jsonFormatter())
	return slog.NewWithHandlers(h)
}

// levelsUpTo 는 gookit 레벨 값이 작을수록 심각하다는 점을 이용한다.
func levelsUpTo(threshold slog.Level) slog.Levels {
	out := make(slog.Levels, 0, len(slog.AllLevels))
	for _, lv := range slog.AllLevels {
		if lv <= threshold {
			out = append(out, lv)
		}
	}
	return out
}

func jsonFormatter() *slog.JSONFormatter {
	return slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{slog.FieldKeyDatetime, slog.FieldKeyLevel, slog.FieldKeyMessage}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "timestamp",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05.000Z07:00"
	})
}

func withServiceName(fields Fields) Fields {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	if _, ok := out["service_name"]; !ok {
		out["service_name"] = serviceName
	}
	return out
}

// logWithFields 는 fields 를 최상위 JSON 키로 붙여 기록한다.
// Log 가 gookit 로거가 아니면 메시지만 전달한다.
func logWithFields(level slog.Level, msg string, fields Fields) {
	var target interface {
		Debug(args ...any)
		Info(args ...any)
		Warn(args ...any)
		Error(args ...any)
	} = Log
	if lg, ok := Log.(*slog.Logger); ok {
		target = lg.WithFields(slog.M(withServiceName(fields)))
	}
	switch level {
	case slog.DebugLevel:
		target.Debug(msg)
	case slog.WarnLevel:
		target.Warn(msg)
	case slog.ErrorLevel:
		target.Error(msg)
	default:
		target.Info(msg)
	}
}

// InfoWithFields 는 request_id 등 구조화 필드를 포함한 JSON 로그를 출력한다.
func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }

func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }
