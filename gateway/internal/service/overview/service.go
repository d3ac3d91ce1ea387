package overview

import (
	"context"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/gateway/internal/service"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"go.uber.org/zap"
)

// Service builds the landing pages. Each source may fail on its own; the
// page fails only when all of them do.
type Service struct {
	log *zap.Logger
	api *libapi.Client
}

func NewService(log *zap.Logger, api *libapi.Client) *Service {
	return &Service{
		log: log.Named("overview"),
		api: api,
	}
}

func (s *Service) Dashboard(ctx context.Context, sess *libapi.Session) (model.Dashboard, error) {
	var (
		stats      libapi.DashboardStats
		activities []libapi.Activity
	)
	results := service.AllSettled(ctx,
		func(ctx context.Context) (err error) {
			stats, err = s.api.AdminStats(ctx, sess)
			return err
		},
		func(ctx context.Context) (err error) {
			activities, err = s.api.RecentActivities(ctx, sess)
			return err
		},
	)
	warnings, err := service.Partial(results)
	if err != nil {
		return model.Dashboard{}, err
	}
	s.warn("dashboard", warnings)

	d := model.Dashboard{Activities: orEmpty(activities), Warnings: warnings}
	if results[0] == nil {
		d.Stats = &stats
	}
	return d, nil
}

func (s *Service) MemberHome(ctx context.Context, sess *libapi.Session, userID string) (model.MemberHome, error) {
	var (
		stats      libapi.MemberStats
		activities []libapi.Activity
	)
	results := service.AllSettled(ctx,
		func(ctx context.Context) (err error) {
			stats, err = s.api.MemberStats(ctx, sess, userID)
			return err
		},
		func(ctx context.Context) (err error) {
			activities, err = s.api.MemberActivities(ctx, sess, userID)
			return err
		},
	)
	warnings, err := service.Partial(results)
	if err != nil {
		return model.MemberHome{}, err
	}
	s.warn("member home", warnings)

	h := model.MemberHome{Activities: orEmpty(activities), Warnings: warnings}
	if results[0] == nil {
		h.Stats = &stats
	}
	return h, nil
}

func (s *Service) warn(page string, warnings []string) {
	for _, w := range warnings {
		s.log.Warn("partial page", zap.String("page", page), zap.String("reason", w))
	}
}

func orEmpty(activities []libapi.Activity) []libapi.Activity {
	if activities == nil {
		return []libapi.Activity{}
	}
	return activities
}
