package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-console/journal/config"
	"github.com/Astemirdum/library-console/journal/internal/handler"
	"github.com/Astemirdum/library-console/journal/internal/repository"
	"github.com/Astemirdum/library-console/journal/internal/service"
	"github.com/Astemirdum/library-console/journal/migrations"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/Astemirdum/library-console/pkg/logger"
	"github.com/Astemirdum/library-console/pkg/postgres"
	"github.com/Astemirdum/library-console/pkg/server"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "journal")
	if !cfg.Kafka.Enabled() {
		return errors.New("KAFKA_ADDRS is required")
	}
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repository")
	}
	svc := service.NewService(repo, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, err := kafka.NewConsumer(cfg.Kafka, kafka.JournalConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumer")
	}
	consumer := handler.NewConsumer(svc.Record, log)
	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		kafka.Consume(ctx, group, consumer, log, kafka.ActivityTopic)
	}()
	go func() {
		select {
		case <-consumer.Ready():
			log.Info("consumer joined group", zap.String("group", kafka.JournalConsumerGroup))
		case <-ctx.Done():
		}
	}()

	h := handler.New(svc, log)
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

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if err := group.Close(); err != nil {
		log.Warn("consumer group close", zap.Error(err))
	}
	<-consumed
	log.Info("Graceful shutdown finished")
	return nil
}
