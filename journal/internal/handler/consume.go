package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/library-console/journal/internal/errs"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type record func(ctx context.Context, event kafka.Event) error

const (
	recordAttempts   = 3
	recordRetryDelay = 500 * time.Millisecond
)

type Consumer struct {
	record     record
	log        *zap.Logger
	ready      chan bool
	retryDelay time.Duration
}

func NewConsumer(record record, log *zap.Logger) *Consumer {
	return &Consumer{
		record:     record,
		log:        log.Named("consumer"),
		ready:      make(chan bool),
		retryDelay: recordRetryDelay,
	}
}

// Ready is closed once the first group session is set up.
func (consumer *Consumer) Ready() <-chan bool {
	return consumer.ready
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-consumer.ready:
	default:
		close(consumer.ready)
	}
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks undecodable and invalid messages so they are not
// redelivered. When storage keeps failing the claim ends without marking
// anything further: the session closes and the partition resumes from the
// failed offset.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			event, err := kafka.DecodeEvent(message.Value)
			if err != nil {
				consumer.log.Error("decode event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordWithRetry(session.Context(), event); err != nil {
				if errors.Is(err, errs.ErrInvalidEvent) {
					consumer.log.Warn("skip event", zap.Error(err), zap.Int64("offset", message.Offset))
					session.MarkMessage(message, "")
					continue
				}
				consumer.log.Error("record event", zap.Error(err), zap.String("id", event.ID), zap.Int64("offset", message.Offset))
				return errors.Wrapf(err, "record event %s at offset %d", event.ID, message.Offset)
			}

			consumer.log.Debug("Message claimed:", zap.String("id", event.ID), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) recordWithRetry(ctx context.Context, event kafka.Event) error {
	for attempt := 1; ; attempt++ {
		err := consumer.record(ctx, event)
		if err == nil || errors.Is(err, errs.ErrInvalidEvent) || attempt == recordAttempts {
			return err
		}
		consumer.log.Warn("record event, retrying", zap.Error(err), zap.Int("attempt", attempt))
		select {
		case <-ctx.Done():
			return err
		case <-time.After(consumer.retryDelay):
		}
	}
}
