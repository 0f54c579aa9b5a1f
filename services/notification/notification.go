package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Service pushes messages to connected admin sessions
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Event is the JSON frame written to admin websocket sessions
type Event struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
	At      time.Time              `json:"at"`
}

type MessageBuilder struct {
	event Event
}

func NewMessageBuilder(eventType string) *MessageBuilder {
	return &MessageBuilder{event: Event{Type: eventType, At: time.Now().UTC()}}
}

func (b *MessageBuilder) Message(format string, args ...interface{}) *MessageBuilder {
	b.event.Message = fmt.Sprintf(format, args...)
	return b
}

func (b *MessageBuilder) With(key string, value interface{}) *MessageBuilder {
	if b.event.Data == nil {
		b.event.Data = map[string]interface{}{}
	}
	b.event.Data[key] = value
	return b
}

func (b *MessageBuilder) Build() string {
	raw, err := json.Marshal(b.event)
	if err != nil {
		return b.event.Message
	}
	return string(raw)
}
