package service

import (
	"context"
	"errors"

	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/session"

	"github.com/sirupsen/logrus"
)

var (
	ErrMissingID     = errors.New("id is required")
	ErrUserNotFound  = errors.New("user not found")
	ErrAdminRequired = errors.New("only an Admin can change username or role")
	ErrPasswordAdmin = errors.New("only an Admin can set a password")
)

// ResourceAPI is the simple-entity part of the ordering API.
type ResourceAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListDishes(ctx context.Context) ([]domain.Dish, error)
	CreateRestaurant(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int) error
	CreateDish(ctx context.Context, d domain.Dish) (domain.Dish, error)
	UpdateDish(ctx context.Context, d domain.Dish) (domain.Dish, error)
	DeleteDish(ctx context.Context, id int) error
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, u domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// ResourceService validates restaurant, dish and user forms before they are
// sent, acting on behalf of one session.
type ResourceService struct {
	api     ResourceAPI
	session session.Context
	log     *logrus.Entry
}

func NewResourceService(api ResourceAPI, sess session.Context, log *logrus.Entry) *ResourceService {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ResourceService{api: api, session: sess, log: log}
}

func (s *ResourceService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.api.ListRestaurants(ctx)
}

func (s *ResourceService) ListDishes(ctx context.Context) ([]domain.Dish, error) {
	return s.api.ListDishes(ctx)
}

func (s *ResourceService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.api.ListUsers(ctx)
}

func (s *ResourceService) CreateRestaurant(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error) {
	if err := s.check(ValidateRestaurant(r)); err != nil {
		return domain.Restaurant{}, err
	}
	r.ID = 0
	created, err := s.api.CreateRestaurant(ctx, r)
	s.logResult(err, "restaurant", "create", created.ID)
	return created, err
}

func (s *ResourceService) UpdateRestaurant(ctx context.Context, r domain.Restaurant) (domain.Restaurant, error) {
	if r.ID == 0 {
		return domain.Restaurant{}, ErrMissingID
	}
	if err := s.check(ValidateRestaurant(r)); err != nil {
		return domain.Restaurant{}, err
	}
	updated, err := s.api.UpdateRestaurant(ctx, r)
	s.logResult(err, "restaurant", "update", r.ID)
	return updated, err
}

func (s *ResourceService) DeleteRestaurant(ctx context.Context, id int) error {
	if err := s.session.Check(); err != nil {
		return err
	}
	err := s.api.DeleteRestaurant(ctx, id)
	s.logResult(err, "restaurant", "delete", id)
	return err
}

func (s *ResourceService) CreateDish(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	if err := s.check(ValidateDish(d)); err != nil {
		return domain.Dish{}, err
	}
	d.ID = 0
	created, err := s.api.CreateDish(ctx, d)
	s.logResult(err, "dish", "create", created.ID)
	return created, err
}

func (s *ResourceService) UpdateDish(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	if d.ID == 0 {
		return domain.Dish{}, ErrMissingID
	}
	if err := s.check(ValidateDish(d)); err != nil {
		return domain.Dish{}, err
	}
	updated, err := s.api.UpdateDish(ctx, d)
	s.logResult(err, "dish", "update", d.ID)
	return updated, err
}

func (s *ResourceService) DeleteDish(ctx context.Context, id int) error {
	if err := s.session.Check(); err != nil {
		return err
	}
	err := s.api.DeleteDish(ctx, id)
	s.logResult(err, "dish", "delete", id)
	return err
}

func (s *ResourceService) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	if err := s.check(ValidateUser(u)); err != nil {
		return domain.User{}, err
	}
	if u.Password != "" && !s.session.IsAdmin() {
		return domain.User{}, ErrPasswordAdmin
	}
	u.ID = 0
	created, err := s.api.CreateUser(ctx, u)
	s.logResult(err, "user", "create", created.ID)
	created.Password = ""
	return created, err
}

// UpdateUser refuses username, role and password changes unless the session
// is an Admin.
func (s *ResourceService) UpdateUser(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == 0 {
		return domain.User{}, ErrMissingID
	}
	if err := s.check(ValidateUser(u)); err != nil {
		return domain.User{}, err
	}

	if !s.session.IsAdmin() {
		if u.Password != "" {
			return domain.User{}, ErrPasswordAdmin
		}
		existing, err := s.findUser(ctx, u.ID)
		if err != nil {
			return domain.User{}, err
		}
		if existing.Username != u.Username || existing.RoleID != u.RoleID {
			return domain.User{}, ErrAdminRequired
		}
	}

	updated, err := s.api.UpdateUser(ctx, u)
	s.logResult(err, "user", "update", u.ID)
	updated.Password = ""
	return updated, err
}

func (s *ResourceService) DeleteUser(ctx context.Context, id int) error {
	if err := s.session.Check(); err != nil {
		return err
	}
	err := s.api.DeleteUser(ctx, id)
	s.logResult(err, "user", "delete", id)
	return err
}

func (s *ResourceService) findUser(ctx context.Context, id int) (domain.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, ErrUserNotFound
}

func (s *ResourceService) check(errs domain.Errors) error {
	if err := s.session.Check(); err != nil {
		return err
	}
	return failed(errs)
}

func (s *ResourceService) logResult(err error, kind, action string, id int) {
	entry := s.log.WithField("resource", kind).WithField("action", action).WithField("id", id)
	if err != nil {
		entry.WithError(err).Warn("resource change failed")
		return
	}
	entry.Info("resource changed")
}
