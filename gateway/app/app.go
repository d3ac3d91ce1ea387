package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-console/gateway/config"
	"github.com/Astemirdum/library-console/gateway/internal/handler"
	"github.com/Astemirdum/library-console/gateway/internal/service/catalog"
	"github.com/Astemirdum/library-console/gateway/internal/service/circulation"
	"github.com/Astemirdum/library-console/gateway/internal/service/journal"
	"github.com/Astemirdum/library-console/gateway/internal/service/member"
	"github.com/Astemirdum/library-console/gateway/internal/service/overview"
	"github.com/Astemirdum/library-console/gateway/internal/service/reservation"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/Astemirdum/library-console/pkg/logger"
	"github.com/Astemirdum/library-console/pkg/server"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "gateway")

	api, err := libapi.New(cfg.LibraryAPI, log)
	if err != nil {
		return errors.Wrap(err, "library api client")
	}

	var producer sarama.AsyncProducer
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewAsyncProducer(cfg.Kafka, log)
		if err != nil {
			return errors.Wrap(err, "kafka producer")
		}
	} else {
		log.Warn("no kafka brokers configured, activity journal is off")
	}

	activity := handler.NewActivityLog(producer, kafka.ActivityTopic, log)
	h := handler.New(log, handler.Services{
		Catalog:     catalog.NewService(log, api),
		Member:      member.NewService(log, api),
		Circulation: circulation.NewService(log, api),
		Reservation: reservation.NewService(log, api),
		Overview:    overview.NewService(log, api),
		Journal:     journal.NewService(log, cfg.JournalHTTPServer),
	}, activity)

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err := activity.Close(); err != nil {
		log.Warn("activity.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
