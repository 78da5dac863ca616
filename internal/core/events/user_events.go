package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeAuthUserChangeEnabled = "AuthUserChangeEnabled"
)

// TrackingEvent is the audit-event shape emitted by administrative
// operations: a name, string attributes and an optional numeric metric.
type TrackingEvent struct {
	BaseEvent
	Attributes map[string]string `json:"attributes"`
	Metric     *float64          `json:"metric,omitempty"`
}

func NewTrackingEvent(name string, attributes map[string]string, metric *float64) *TrackingEvent {
	data := make(map[string]interface{}, len(attributes))
	for k, v := range attributes {
		data[k] = v
	}
	return &TrackingEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      name,
			Timestamp: time.Now(),
			Data:      data,
		},
		Attributes: attributes,
		Metric:     metric,
	}
}
