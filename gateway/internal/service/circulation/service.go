package circulation

import (
	"context"
	"time"

	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/gateway/internal/service"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/Astemirdum/library-console/pkg/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service runs the borrow, return and fine workflows.
type Service struct {
	log       *zap.Logger
	api       *libapi.Client
	validator *validate.CustomValidator
	now       func() time.Time
}

func NewService(log *zap.Logger, api *libapi.Client) *Service {
	return &Service{
		log:       log.Named("circulation"),
		api:       api,
		validator: validate.NewCustomValidator(),
		now:       time.Now,
	}
}

// BorrowPage loads borrow history and the issue form pickers together;
// any failure fails the page. Only books with a free copy are offered.
func (s *Service) BorrowPage(ctx context.Context, sess *libapi.Session) (model.BorrowPage, error) {
	var (
		borrows []libapi.Borrow
		users   []libapi.User
		books   []libapi.Book
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		borrows, err = s.api.BorrowHistory(gctx, sess)
		return err
	})
	gg.Go(func() (err error) {
		users, err = s.api.ListUsers(gctx, sess)
		return err
	})
	gg.Go(func() (err error) {
		books, err = s.api.ListBooks(gctx, sess)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.BorrowPage{}, err
	}

	issuable := make([]libapi.Book, 0, len(books))
	for _, b := range books {
		if b.Issuable() {
			issuable = append(issuable, b)
		}
	}
	if users == nil {
		users = []libapi.User{}
	}
	return model.BorrowPage{
		Borrows: model.NewBorrowViews(borrows, s.now()),
		Users:   users,
		Books:   issuable,
	}, nil
}

func (s *Service) UserBorrows(ctx context.Context, sess *libapi.Session, userID string) ([]model.BorrowView, error) {
	borrows, err := s.api.UserBorrows(ctx, sess, userID)
	if err != nil {
		return nil, err
	}
	return model.NewBorrowViews(borrows, s.now()), nil
}

// Issue lends a book for req.Days days. Invalid requests never reach the API.
func (s *Service) Issue(ctx context.Context, sess *libapi.Session, req model.IssueBookRequest) (libapi.Borrow, error) {
	if err := s.validator.Validate(req); err != nil {
		return libapi.Borrow{}, errs.Invalid(err)
	}
	borrow, err := s.api.IssueBook(ctx, sess, libapi.IssueBook{
		UserID: req.UserID,
		BookID: req.BookID,
		Days:   req.Days,
	})
	if err != nil {
		return libapi.Borrow{}, err
	}
	s.log.Debug("book issued", zap.String("borrow", borrow.ID), zap.String("user", req.UserID), zap.String("book", req.BookID))
	return borrow, nil
}

// Return closes a borrow. A borrow with a fine is closed by paying it in
// full with req.Method; the API marks the borrow returned on payment.
func (s *Service) Return(ctx context.Context, sess *libapi.Session, borrowID string, req model.ReturnBookRequest) (model.ReturnResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return model.ReturnResult{}, errs.Invalid(err)
	}
	borrow, err := s.api.GetBorrow(ctx, sess, borrowID)
	if err != nil {
		return model.ReturnResult{}, err
	}
	if borrow.Status == libapi.BorrowReturned {
		return model.ReturnResult{}, errs.ErrAlreadyReturned
	}

	if !borrow.NeedsPayment() {
		returned, err := s.api.MarkReturned(ctx, sess, borrow.ID)
		if err != nil {
			return model.ReturnResult{}, err
		}
		return model.ReturnResult{Borrow: &returned}, nil
	}

	if req.Method == "" {
		return model.ReturnResult{}, errs.ErrPaymentRequired
	}
	var userID string
	if borrow.User != nil {
		userID = borrow.User.ID
	}
	payment, err := s.api.PayFine(ctx, sess, libapi.PayFine{
		UserID:   userID,
		BorrowID: borrow.ID,
		Amount:   borrow.Fine,
		Method:   req.Method,
	})
	if err != nil {
		return model.ReturnResult{}, err
	}
	s.log.Debug("fine paid", zap.String("borrow", borrow.ID), zap.Float64("amount", borrow.Fine), zap.String("method", string(req.Method)))
	return model.ReturnResult{Payment: &payment}, nil
}

// FinesPage shows what partially loaded when one of the two sources fails.
func (s *Service) FinesPage(ctx context.Context, sess *libapi.Session) (model.FinesPage, error) {
	return s.finesPage(ctx,
		func(ctx context.Context) ([]libapi.FinePayment, error) { return s.api.FineHistory(ctx, sess) },
		func(ctx context.Context) ([]libapi.Borrow, error) { return s.api.OutstandingBorrows(ctx, sess) },
	)
}

func (s *Service) UserFines(ctx context.Context, sess *libapi.Session, userID string) (model.FinesPage, error) {
	return s.finesPage(ctx,
		func(ctx context.Context) ([]libapi.FinePayment, error) { return s.api.UserFines(ctx, sess, userID) },
		func(ctx context.Context) ([]libapi.Borrow, error) {
			return s.api.UserOutstandingBorrows(ctx, sess, userID)
		},
	)
}

func (s *Service) finesPage(
	ctx context.Context,
	history func(ctx context.Context) ([]libapi.FinePayment, error),
	outstanding func(ctx context.Context) ([]libapi.Borrow, error),
) (model.FinesPage, error) {
	var (
		payments []libapi.FinePayment
		borrows  []libapi.Borrow
	)
	results := service.AllSettled(ctx,
		func(ctx context.Context) (err error) {
			payments, err = history(ctx)
			return err
		},
		func(ctx context.Context) (err error) {
			borrows, err = outstanding(ctx)
			return err
		},
	)
	warnings, err := service.Partial(results)
	if err != nil {
		return model.FinesPage{}, err
	}
	for _, w := range warnings {
		s.log.Warn("fines page partially loaded", zap.String("reason", w))
	}

	now := s.now()
	unpaid := make([]model.BorrowView, 0, len(borrows))
	for _, b := range borrows {
		if b.NeedsPayment() {
			unpaid = append(unpaid, model.NewBorrowView(b, now))
		}
	}
	if payments == nil {
		payments = []libapi.FinePayment{}
	}
	return model.FinesPage{Payments: payments, Outstanding: unpaid, Warnings: warnings}, nil
}
