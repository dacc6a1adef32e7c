package notify

import (
	"context"
	"sync"

	"github.com/2beens/fittrack/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Sink receives the short user facing messages about completed or failed actions.
type Sink interface {
	Notify(ctx context.Context, message string, kind Kind)
}

var (
	_ Sink = (*LogSink)(nil)
	_ Sink = (*Recorder)(nil)
)

type LogSink struct {
	metricsManager *metrics.Manager
}

func NewLogSink(metricsManager *metrics.Manager) *LogSink {
	return &LogSink{
		metricsManager: metricsManager,
	}
}

func (s *LogSink) Notify(_ context.Context, message string, kind Kind) {
	entry := log.WithField("kind", string(kind))
	switch kind {
	case KindError:
		entry.Errorf("notification: %s", message)
	case KindWarning:
		entry.Warnf("notification: %s", message)
	default:
		entry.Infof("notification: %s", message)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterNotifications.WithLabelValues(string(kind)).Inc()
	}
}

type Notification struct {
	Message string
	Kind    Kind
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mutex         sync.Mutex
	notifications []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(_ context.Context, message string, kind Kind) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.notifications = append(r.notifications, Notification{Message: message, Kind: kind})
}

func (r *Recorder) All() []Notification {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]Notification(nil), r.notifications...)
}

// Last returns the most recent notification, or false if none were recorded.
func (r *Recorder) Last() (Notification, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if len(r.notifications) == 0 {
		return Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}
