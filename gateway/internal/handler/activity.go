package handler

import (
	"sync"
	"time"

	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type activityLog struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger

	mu     sync.RWMutex
	closed bool
}

// NewActivityLog publishes console mutations to topic. A nil producer
// turns publishing off.
func NewActivityLog(producer sarama.AsyncProducer, topic string, log *zap.Logger) *activityLog {
	return &activityLog{
		producer: producer,
		topic:    topic,
		log:      log.Named("activity"),
	}
}

// Log is best-effort: a failure is logged and never fails the request.
func (l *activityLog) Log(event kafka.Event) {
	if l == nil || l.producer == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	data, err := event.Encode()
	if err != nil {
		l.log.Warn("encode event", zap.String("type", string(event.Type)), zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(event.ID),
		Value: sarama.ByteEncoder(data),
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		l.log.Debug("activity log closed, event dropped", zap.String("type", string(event.Type)))
		return
	}
	l.producer.Input() <- msg
}

// Close stops publishing and closes the producer. Requests still running
// after Close drop their events.
func (l *activityLog) Close() error {
	if l == nil || l.producer == nil {
		return nil
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()
	return l.producer.Close()
}
