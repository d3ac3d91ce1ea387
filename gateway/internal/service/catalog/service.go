package catalog

import (
	"context"

	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/Astemirdum/library-console/pkg/validate"
	"go.uber.org/zap"
)

// Service covers books and reviews.
type Service struct {
	log       *zap.Logger
	api       *libapi.Client
	validator *validate.CustomValidator
}

func NewService(log *zap.Logger, api *libapi.Client) *Service {
	return &Service{
		log:       log.Named("catalog"),
		api:       api,
		validator: validate.NewCustomValidator(),
	}
}

func (s *Service) ListBooks(ctx context.Context, sess *libapi.Session) ([]libapi.Book, error) {
	return s.api.ListBooks(ctx, sess)
}

// SearchBooks lists every book when title is empty.
func (s *Service) SearchBooks(ctx context.Context, sess *libapi.Session, title string) ([]libapi.Book, error) {
	if title == "" {
		return s.api.ListBooks(ctx, sess)
	}
	return s.api.SearchBooks(ctx, sess, title)
}

func (s *Service) GetBook(ctx context.Context, sess *libapi.Session, id string) (libapi.Book, error) {
	return s.api.GetBook(ctx, sess, id)
}

func (s *Service) CreateBook(ctx context.Context, sess *libapi.Session, req model.BookRequest) (libapi.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return libapi.Book{}, errs.Invalid(err)
	}
	return s.api.CreateBook(ctx, sess, req.Input())
}

// UpdateBook keeps the stored ISBN, it is not editable once set.
func (s *Service) UpdateBook(ctx context.Context, sess *libapi.Session, id string, req model.BookRequest) (libapi.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return libapi.Book{}, errs.Invalid(err)
	}
	in := req.Input()
	in.ISBN = ""
	return s.api.UpdateBook(ctx, sess, id, in)
}

func (s *Service) DeleteBook(ctx context.Context, sess *libapi.Session, id string) error {
	return s.api.DeleteBook(ctx, sess, id)
}

func (s *Service) ListReviews(ctx context.Context, sess *libapi.Session) ([]libapi.Review, error) {
	return s.api.ListReviews(ctx, sess)
}

func (s *Service) CreateReview(ctx context.Context, sess *libapi.Session, req model.ReviewRequest) (libapi.Review, error) {
	if err := s.validator.Validate(req); err != nil {
		return libapi.Review{}, errs.Invalid(err)
	}
	return s.api.CreateReview(ctx, sess, libapi.ReviewInput{
		UserID: req.UserID,
		BookID: req.BookID,
		Rating: req.Rating,
		Review: req.Review,
	})
}
