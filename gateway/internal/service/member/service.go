package member

import (
	"context"
	"strings"

	"github.com/Astemirdum/library-console/gateway/internal/errs"
	"github.com/Astemirdum/library-console/gateway/internal/model"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/Astemirdum/library-console/pkg/validate"
	"go.uber.org/zap"
)

// Service covers users and sign-in.
type Service struct {
	log       *zap.Logger
	api       *libapi.Client
	validator *validate.CustomValidator
}

func NewService(log *zap.Logger, api *libapi.Client) *Service {
	return &Service{
		log:       log.Named("member"),
		api:       api,
		validator: validate.NewCustomValidator(),
	}
}

func (s *Service) Login(ctx context.Context, sess *libapi.Session, req model.LoginRequest) (libapi.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return libapi.User{}, errs.Invalid(err)
	}
	user, err := s.api.Login(ctx, sess, libapi.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		return libapi.User{}, err
	}
	s.log.Info("signed in", zap.String("user", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

func (s *Service) Logout(ctx context.Context, sess *libapi.Session) error {
	return s.api.Logout(ctx, sess)
}

func (s *Service) Me(ctx context.Context, sess *libapi.Session) (libapi.User, error) {
	return s.api.Me(ctx, sess)
}

// ListUsers filters on name or email containing query, case-insensitively.
func (s *Service) ListUsers(ctx context.Context, sess *libapi.Session, query string) ([]libapi.User, error) {
	users, err := s.api.ListUsers(ctx, sess)
	if err != nil {
		return nil, err
	}
	return FilterUsers(users, query), nil
}

func FilterUsers(users []libapi.User, query string) []libapi.User {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]libapi.User, 0, len(users))
	for _, u := range users {
		if query == "" ||
			strings.Contains(strings.ToLower(u.Name), query) ||
			strings.Contains(strings.ToLower(u.Email), query) {
			out = append(out, u)
		}
	}
	return out
}

func (s *Service) SearchUsers(ctx context.Context, sess *libapi.Session, name string) ([]libapi.User, error) {
	if name == "" {
		return s.api.ListUsers(ctx, sess)
	}
	return s.api.SearchUsers(ctx, sess, name)
}

func (s *Service) CreateUser(ctx context.Context, sess *libapi.Session, req model.UserCreateRequest) (libapi.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return libapi.User{}, errs.Invalid(err)
	}
	return s.api.Register(ctx, sess, libapi.UserCreate{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     req.Role,
		Password: req.Password,
	})
}

func (s *Service) UpdateUser(ctx context.Context, sess *libapi.Session, id string, req model.UserUpdateRequest) (libapi.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return libapi.User{}, errs.Invalid(err)
	}
	return s.api.UpdateUser(ctx, sess, id, libapi.UserUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    req.Role,
	})
}
