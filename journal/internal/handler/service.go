package handler

import (
	"context"

	"github.com/Astemirdum/library-console/journal/internal/model"
	"github.com/Astemirdum/library-console/journal/internal/service"
	"github.com/Astemirdum/library-console/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type JournalService interface {
	Record(ctx context.Context, event kafka.Event) error
	Entries(ctx context.Context, filter model.Filter) (model.Journal, error)
	Counts(ctx context.Context) (model.Counts, error)
}

var _ JournalService = (*service.Service)(nil)
