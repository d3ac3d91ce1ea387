package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	ActivityTopic        = "library.activity"
	JournalConsumerGroup = "library-journal"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func newConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "library-console"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = false
	cfg.Producer.Return.Errors = true
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	return cfg
}

// NewAsyncProducer starts a producer and drains its error channel into log.
func NewAsyncProducer(cfg Config, log *zap.Logger) (sarama.AsyncProducer, error) {
	producer, err := sarama.NewAsyncProducer(cfg.Addrs, newConfig())
	if err != nil {
		return nil, errors.Wrap(err, "sarama.NewAsyncProducer")
	}
	go func() {
		for perr := range producer.Errors() {
			log.Warn("kafka produce", zap.String("topic", perr.Msg.Topic), zap.Error(perr.Err))
		}
	}()
	return producer, nil
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	consumer, err := sarama.NewConsumerGroup(cfg.Addrs, group, newConfig())
	if err != nil {
		return nil, errors.Wrap(err, "sarama.NewConsumerGroup")
	}
	return consumer, nil
}

// Consume runs the group session loop until ctx is done. Consume returns on
// every rebalance, so it is called again after each session ends.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("kafka consume", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}
