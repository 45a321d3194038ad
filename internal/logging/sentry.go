// Package logging contains logrus helpers.
package logging

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryOptions configures the sentry client behind the hook.
type SentryOptions struct {
	Dsn              string
	AttachStacktrace bool
	Release          string
	ServerName       string
}

// SentryHook is a logrus hook which forwards entries to sentry.
type SentryHook struct {
	client *sentry.Client
	levels []logrus.Level
}

// NewSentryHook creates a hook firing on the given levels.
func NewSentryHook(opts SentryOptions, levels ...logrus.Level) (*SentryHook, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              opts.Dsn,
		AttachStacktrace: opts.AttachStacktrace,
		Release:          opts.Release,
		ServerName:       opts.ServerName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	return &SentryHook{
		client: client,
		levels: levels,
	}, nil
}

// Levels ...
func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

// Fire ...
func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time

	for k, v := range entry.Data {
		if k == logrus.ErrorKey {
			if err, ok := v.(error); ok {
				event.Message = fmt.Sprintf("%s: %s", entry.Message, err)
				continue
			}
		}
		event.Extra[k] = v
	}

	h.client.CaptureEvent(event, nil, sentry.NewScope())

	return nil
}

// Flush waits for buffered events to be sent.
func (h *SentryHook) Flush(timeout time.Duration) bool {
	return h.client.Flush(timeout)
}

func sentryLevel(l logrus.Level) sentry.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.DebugLevel, logrus.TraceLevel:
		return sentry.LevelDebug
	default:
		return sentry.LevelInfo
	}
}
