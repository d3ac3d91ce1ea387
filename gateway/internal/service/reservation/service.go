package reservation

import (
	"context"

	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/Astemirdum/library-console/pkg/validate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errStatus = errors.New("status must be one of [active completed cancelled]")

type Service struct {
	log       *zap.Logger
	api       *libapi.Client
	validator *validate.CustomValidator
}

func NewService(log *zap.Logger, api *libapi.Client) *Service {
	return &Service{
		log:       log.Named("reservation"),
		api:       api,
		validator: validate.NewCustomValidator(),
	}
}

func checkStatus(status libapi.ReservationStatus) error {
	switch status {
	case "", libapi.ReservationActive, libapi.ReservationCompleted, libapi.ReservationCancelled:
		return nil
	default:
		return errs.Invalid(errStatus)
	}
}

// Page lists reservations of the given status (all when empty) with counts
// over every status.
func (s *Service) Page(ctx context.Context, sess *libapi.Session, status libapi.ReservationStatus) (model.ReservationsPage, error) {
	if err := checkStatus(status); err != nil {
		return model.ReservationsPage{}, err
	}
	all, err := s.api.ListReservations(ctx, sess, "")
	if err != nil {
		return model.ReservationsPage{}, err
	}
	return model.NewReservationsPage(all, status), nil
}

func (s *Service) UserPage(ctx context.Context, sess *libapi.Session, userID string, status libapi.ReservationStatus) (model.ReservationsPage, error) {
	if err := checkStatus(status); err != nil {
		return model.ReservationsPage{}, err
	}
	all, err := s.api.UserReservations(ctx, sess, userID, "")
	if err != nil {
		return model.ReservationsPage{}, err
	}
	return model.NewReservationsPage(all, status), nil
}

// Reserve forwards the hold; availability and queueing are the API's call.
func (s *Service) Reserve(ctx context.Context, sess *libapi.Session, req model.ReserveBookRequest) (libapi.Reservation, error) {
	if err := s.validator.Validate(req); err != nil {
		return libapi.Reservation{}, errs.Invalid(err)
	}
	return s.api.Reserve(ctx, sess, libapi.ReserveBook{UserID: req.UserID, BookID: req.BookID})
}

// Cancel cancels an active reservation once the caller confirmed it.
func (s *Service) Cancel(ctx context.Context, sess *libapi.Session, id string, req model.CancelReservationRequest) (libapi.Reservation, error) {
	if !req.Confirm {
		return libapi.Reservation{}, errs.ErrConfirmRequired
	}
	rsv, err := s.api.GetReservation(ctx, sess, id)
	if err != nil {
		return libapi.Reservation{}, err
	}
	if !rsv.Cancellable() {
		s.log.Debug("cancel rejected", zap.String("reservation", id), zap.String("status", string(rsv.Status)))
		return libapi.Reservation{}, errs.ErrNotCancellable
	}
	return s.api.CancelReservation(ctx, sess, id)
}
