package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-console/journal/internal/errs"
	"github.com/Astemirdum/library-console/journal/internal/model"
	"github.com/Astemirdum/library-console/journal/internal/repository"
	"github.com/Astemirdum/library-console/pkg/kafka"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

// Record journals a consumed event. Redelivered events are dropped silently.
func (s *Service) Record(ctx context.Context, event kafka.Event) error {
	if event.ID == "" || event.Type == "" {
		return errs.ErrInvalidEvent
	}
	err := s.repo.Record(ctx, model.NewEntry(event))
	if errors.Is(err, errs.ErrDuplicate) {
		s.log.Debug("duplicate event", zap.String("id", event.ID))
		return nil
	}
	return err
}

func (s *Service) Entries(ctx context.Context, f model.Filter) (model.Journal, error) {
	if f.Limit == 0 {
		f.Limit = model.DefaultLimit
	}
	if f.Limit < 0 || f.Limit > model.MaxLimit {
		return model.Journal{}, errs.ErrLimit
	}
	entries, err := s.repo.List(ctx, f)
	if err != nil {
		return model.Journal{}, err
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return model.Journal{Entries: entries}, nil
}

func (s *Service) Counts(ctx context.Context) (model.Counts, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return model.Counts{}, err
	}
	if counts == nil {
		counts = []model.TypeCount{}
	}
	return model.Counts{Data: counts}, nil
}
