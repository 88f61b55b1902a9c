package service_test

import (
	"context"
	"testing"
	"time"

	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/mocks"
	"overcooked-console/console-svc/internal/service"
	"overcooked-console/console-svc/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminSession = session.Context{ID: "a", Username: "root", Role: session.RoleAdmin}
	staffSession = session.Context{ID: "s", Username: "ann", Role: "Staff"}
)

func TestResourceService_CreateRestaurant(t *testing.T) {
	api := mocks.NewResourceAPI(t)
	svc := service.NewResourceService(api, adminSession, nil)

	input := validRestaurant()
	input.ID = 99
	api.On("CreateRestaurant", mock.Anything, mock.MatchedBy(func(r domain.Restaurant) bool {
		return r.ID == 0 && r.Name == "Trattoria"
	})).Return(domain.Restaurant{ID: 5, Name: "Trattoria"}, nil).Once()

	created, err := svc.CreateRestaurant(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)
}

func TestResourceService_InvalidFormNeverReachesAPI(t *testing.T) {
	api := mocks.NewResourceAPI(t)
	svc := service.NewResourceService(api, adminSession, nil)

	_, err := svc.CreateDish(context.Background(), domain.Dish{})

	var failed *domain.ValidationFailed
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, failed.Errors, "dish_Name")
	assert.Contains(t, failed.Errors, "restaurant_Id")
}

func TestResourceService_UpdateRequiresID(t *testing.T) {
	svc := service.NewResourceService(mocks.NewResourceAPI(t), adminSession, nil)

	_, err := svc.UpdateDish(context.Background(), validDish())

	assert.ErrorIs(t, err, service.ErrMissingID)
}

func TestResourceService_UpdateUser(t *testing.T) {
	stored := validUser()
	stored.ID = 3

	tests := []struct {
		name      string
		sess      session.Context
		modify    func(*domain.User)
		setupMock func(*mocks.ResourceAPI)
		wantErr   error
	}{
		{
			name:   "admin changes role",
			sess:   adminSession,
			modify: func(u *domain.User) { u.RoleID = 1 },
			setupMock: func(m *mocks.ResourceAPI) {
				m.On("UpdateUser", mock.Anything, mock.Anything).Return(stored, nil).Once()
			},
		},
		{
			name:   "staff changes email",
			sess:   staffSession,
			modify: func(u *domain.User) { u.Email = "new@example.com" },
			setupMock: func(m *mocks.ResourceAPI) {
				m.On("ListUsers", mock.Anything).Return([]domain.User{stored}, nil).Once()
				m.On("UpdateUser", mock.Anything, mock.Anything).Return(stored, nil).Once()
			},
		},
		{
			name:   "staff changes username",
			sess:   staffSession,
			modify: func(u *domain.User) { u.Username = "boss" },
			setupMock: func(m *mocks.ResourceAPI) {
				m.On("ListUsers", mock.Anything).Return([]domain.User{stored}, nil).Once()
			},
			wantErr: service.ErrAdminRequired,
		},
		{
			name:   "staff changes role",
			sess:   staffSession,
			modify: func(u *domain.User) { u.RoleID = 1 },
			setupMock: func(m *mocks.ResourceAPI) {
				m.On("ListUsers", mock.Anything).Return([]domain.User{stored}, nil).Once()
			},
			wantErr: service.ErrAdminRequired,
		},
		{
			name:      "staff sets password",
			sess:      staffSession,
			modify:    func(u *domain.User) { u.Password = "hunter22" },
			setupMock: func(m *mocks.ResourceAPI) {},
			wantErr:   service.ErrPasswordAdmin,
		},
		{
			name:   "admin sets password",
			sess:   adminSession,
			modify: func(u *domain.User) { u.Password = "hunter22" },
			setupMock: func(m *mocks.ResourceAPI) {
				m.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
					return u.Password == "hunter22"
				})).Return(stored, nil).Once()
			},
		},
		{
			name:   "staff edits unknown user",
			sess:   staffSession,
			modify: func(u *domain.User) { u.ID = 77 },
			setupMock: func(m *mocks.ResourceAPI) {
				m.On("ListUsers", mock.Anything).Return([]domain.User{stored}, nil).Once()
			},
			wantErr: service.ErrUserNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			api := mocks.NewResourceAPI(t)
			testCase.setupMock(api)
			svc := service.NewResourceService(api, testCase.sess, nil)

			u := stored
			testCase.modify(&u)
			_, err := svc.UpdateUser(context.Background(), u)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestResourceService_CreateUserPassword(t *testing.T) {
	input := validUser()
	input.Password = "hunter22"

	t.Run("staff", func(t *testing.T) {
		svc := service.NewResourceService(mocks.NewResourceAPI(t), staffSession, nil)

		_, err := svc.CreateUser(context.Background(), input)

		assert.ErrorIs(t, err, service.ErrPasswordAdmin)
	})

	t.Run("admin", func(t *testing.T) {
		api := mocks.NewResourceAPI(t)
		svc := service.NewResourceService(api, adminSession, nil)
		echo := input
		echo.ID = 9
		api.On("CreateUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Password == "hunter22"
		})).Return(echo, nil).Once()

		created, err := svc.CreateUser(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, 9, created.ID)
		assert.Empty(t, created.Password)
	})
}

func TestResourceService_ExpiredSession(t *testing.T) {
	expired := adminSession
	expired.ExpiresAt = time.Now().Add(-time.Second)
	svc := service.NewResourceService(mocks.NewResourceAPI(t), expired, nil)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 3), session.ErrExpired)
	_, err := svc.CreateRestaurant(context.Background(), validRestaurant())
	assert.ErrorIs(t, err, session.ErrExpired)
}

func TestResourceService_Delete(t *testing.T) {
	api := mocks.NewResourceAPI(t)
	svc := service.NewResourceService(api, staffSession, nil)

	api.On("DeleteRestaurant", mock.Anything, 4).Return(nil).Once()
	api.On("DeleteDish", mock.Anything, 8).Return(nil).Once()

	assert.NoError(t, svc.DeleteRestaurant(context.Background(), 4))
	assert.NoError(t, svc.DeleteDish(context.Background(), 8))
}
