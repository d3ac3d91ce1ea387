package handler

import (
	"context"

	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/gateway/internal/service/catalog"
	"github.com/Astemirdum/library-console/gateway/internal/service/circulation"
	"github.com/Astemirdum/library-console/gateway/internal/service/journal"
	"github.com/Astemirdum/library-console/gateway/internal/service/member"
	"github.com/Astemirdum/library-console/gateway/internal/service/overview"
	"github.com/Astemirdum/library-console/gateway/internal/service/reservation"
	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/Astemirdum/library-console/pkg/libapi"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ CatalogService     = (*catalog.Service)(nil)
	_ MemberService      = (*member.Service)(nil)
	_ CirculationService = (*circulation.Service)(nil)
	_ ReservationService = (*reservation.Service)(nil)
	_ OverviewService    = (*overview.Service)(nil)
	_ JournalService     = (*journal.Service)(nil)
	_ ActivityLog        = (*activityLog)(nil)
)

type CatalogService interface {
	ListBooks(ctx context.Context, sess *libapi.Session) ([]libapi.Book, error)
	SearchBooks(ctx context.Context, sess *libapi.Session, title string) ([]libapi.Book, error)
	GetBook(ctx context.Context, sess *libapi.Session, id string) (libapi.Book, error)
	CreateBook(ctx context.Context, sess *libapi.Session, req model.BookRequest) (libapi.Book, error)
	UpdateBook(ctx context.Context, sess *libapi.Session, id string, req model.BookRequest) (libapi.Book, error)
	DeleteBook(ctx context.Context, sess *libapi.Session, id string) error
	ListReviews(ctx context.Context, sess *libapi.Session) ([]libapi.Review, error)
	CreateReview(ctx context.Context, sess *libapi.Session, req model.ReviewRequest) (libapi.Review, error)
}

type MemberService interface {
	Login(ctx context.Context, sess *libapi.Session, req model.LoginRequest) (libapi.User, error)
	Logout(ctx context.Context, sess *libapi.Session) error
	Me(ctx context.Context, sess *libapi.Session) (libapi.User, error)
	ListUsers(ctx context.Context, sess *libapi.Session, query string) ([]libapi.User, error)
	SearchUsers(ctx context.Context, sess *libapi.Session, name string) ([]libapi.User, error)
	CreateUser(ctx context.Context, sess *libapi.Session, req model.UserCreateRequest) (libapi.User, error)
	UpdateUser(ctx context.Context, sess *libapi.Session, id string, req model.UserUpdateRequest) (libapi.User, error)
}

type CirculationService interface {
	BorrowPage(ctx context.Context, sess *libapi.Session) (model.BorrowPage, error)
	UserBorrows(ctx context.Context, sess *libapi.Session, userID string) ([]model.BorrowView, error)
	Issue(ctx context.Context, sess *libapi.Session, req model.IssueBookRequest) (libapi.Borrow, error)
	Return(ctx context.Context, sess *libapi.Session, borrowID string, req model.ReturnBookRequest) (model.ReturnResult, error)
	FinesPage(ctx context.Context, sess *libapi.Session) (model.FinesPage, error)
	UserFines(ctx context.Context, sess *libapi.Session, userID string) (model.FinesPage, error)
}

type ReservationService interface {
	Page(ctx context.Context, sess *libapi.Session, status libapi.ReservationStatus) (model.ReservationsPage, error)
	UserPage(ctx context.Context, sess *libapi.Session, userID string, status libapi.ReservationStatus) (model.ReservationsPage, error)
	Reserve(ctx context.Context, sess *libapi.Session, req model.ReserveBookRequest) (libapi.Reservation, error)
	Cancel(ctx context.Context, sess *libapi.Session, id string, req model.CancelReservationRequest) (libapi.Reservation, error)
}

type OverviewService interface {
	Dashboard(ctx context.Context, sess *libapi.Session) (model.Dashboard, error)
	MemberHome(ctx context.Context, sess *libapi.Session, userID string) (model.MemberHome, error)
}

type JournalService interface {
	Entries(ctx context.Context, eventType string, limit int) (model.Journal, error)
}

type ActivityLog interface {
	Log(event kafka.Event)
}
