package handler

import (
	"testing"

	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestActivityLog_Log(t *testing.T) {
	t.Parallel()
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewAsyncProducer(t, cfg)
	producer.ExpectInputWithCheckerFunctionAndSucceed(func(val []byte) error {
		event, err := kafka.DecodeEvent(val)
		if err != nil {
			return err
		}
		if event.ID == "" || event.Timestamp.IsZero() {
			return errors.New("event id and timestamp must be set")
		}
		if event.Type != kafka.EventFinePaid || event.Amount != 7.5 {
			return errors.Errorf("unexpected event %+v", event)
		}
		return nil
	})

	l := NewActivityLog(producer, kafka.ActivityTopic, zap.NewNop())
	l.Log(kafka.Event{Type: kafka.EventFinePaid, BorrowID: "br1", Amount: 7.5, Method: "card"})

	msg := <-producer.Successes()
	require.Equal(t, kafka.ActivityTopic, msg.Topic)
	require.NoError(t, producer.Close())
}

func TestActivityLog_Disabled(t *testing.T) {
	t.Parallel()
	var nilLog *activityLog
	require.NotPanics(t, func() {
		nilLog.Log(kafka.Event{Type: kafka.EventBookCreated})
		NewActivityLog(nil, kafka.ActivityTopic, zap.NewNop()).Log(kafka.Event{Type: kafka.EventBookCreated})
	})
}

func TestActivityLog_LogAfterClose(t *testing.T) {
	t.Parallel()
	producer := mocks.NewAsyncProducer(t, mocks.NewTestConfig())

	l := NewActivityLog(producer, kafka.ActivityTopic, zap.NewNop())
	require.NoError(t, l.Close())
	require.NotPanics(t, func() {
		l.Log(kafka.Event{Type: kafka.EventBorrowReturned, BorrowID: "br1"})
	})
	require.NoError(t, l.Close())
}
