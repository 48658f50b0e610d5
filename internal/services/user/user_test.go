package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/uniswap/internal/lib/password"
	"github.com/magabrotheeeer/uniswap/internal/models"
	services "github.com/magabrotheeeer/uniswap/internal/services/user"
	"github.com/magabrotheeeer/uniswap/internal/storage"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) user(args mock.Arguments) (*models.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return m.user(m.Called(ctx, phone))
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *UserRepoMock) CheckUserByPhone(ctx context.Context, phone, pwd string) (*models.User, error) {
	return m.user(m.Called(ctx, phone, pwd))
}

func (m *UserRepoMock) CheckUserByEmail(ctx context.Context, email, pwd string) (*models.User, error) {
	return m.user(m.Called(ctx, email, pwd))
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user models.NewUser) (*models.User, error) {
	return m.user(m.Called(ctx, user))
}

// Мок для Cache
type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	if args.Bool(0) {
		if p, ok := result.(*bool); ok {
			*p = true
		}
	}
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

type ObserverMock struct {
	mock.Mock
}

func (m *ObserverMock) ObserveSignup(accountType, result string) { m.Called(accountType, result) }
func (m *ObserverMock) ObserveLogin(accountType, result string)  { m.Called(accountType, result) }

const ttl = time.Minute

func str(s string) *string {
	return &s
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(repo *UserRepoMock, cache *CacheMock, obs *ObserverMock) *services.UserService {
	return services.NewUserService(repo, cache, ttl, obs, newNoopLogger())
}

func TestUserService_PhoneExists(t *testing.T) {
	dbErr := errors.New("db down")
	tests := []struct {
		name       string
		setupMocks func(r *UserRepoMock, c *CacheMock)
		want       bool
		wantErr    error
	}{
		{
			name: "cache hit skips storage",
			setupMocks: func(_ *UserRepoMock, c *CacheMock) {
				c.On("Get", mock.Anything, "user:phone:111", mock.Anything).Return(true, nil).Once()
			},
			want: true,
		},
		{
			name: "found in storage is cached",
			setupMocks: func(r *UserRepoMock, c *CacheMock) {
				c.On("Get", mock.Anything, "user:phone:111", mock.Anything).Return(false, nil).Once()
				r.On("GetUserByPhone", mock.Anything, "111").Return(&models.User{ID: "alice"}, nil).Once()
				c.On("Set", mock.Anything, "user:phone:111", true, ttl).Return(nil).Once()
			},
			want: true,
		},
		{
			name: "miss is not cached",
			setupMocks: func(r *UserRepoMock, c *CacheMock) {
				c.On("Get", mock.Anything, "user:phone:111", mock.Anything).Return(false, nil).Once()
				r.On("GetUserByPhone", mock.Anything, "111").Return(nil, storage.ErrUserNotFound).Once()
			},
			want: false,
		},
		{
			name: "cache error falls back to storage",
			setupMocks: func(r *UserRepoMock, c *CacheMock) {
				c.On("Get", mock.Anything, "user:phone:111", mock.Anything).Return(false, errors.New("redis down")).Once()
				r.On("GetUserByPhone", mock.Anything, "111").Return(&models.User{ID: "alice"}, nil).Once()
				c.On("Set", mock.Anything, "user:phone:111", true, ttl).Return(errors.New("redis down")).Once()
			},
			want: true,
		},
		{
			name: "storage error",
			setupMocks: func(r *UserRepoMock, c *CacheMock) {
				c.On("Get", mock.Anything, "user:phone:111", mock.Anything).Return(false, nil).Once()
				r.On("GetUserByPhone", mock.Anything, "111").Return(nil, dbErr).Once()
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache := new(UserRepoMock), new(CacheMock)
			tt.setupMocks(repo, cache)
			svc := newService(repo, cache, new(ObserverMock))

			got, err := svc.PhoneExists(context.Background(), "111")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), "services.UserService.PhoneExists")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestUserService_EmailExists(t *testing.T) {
	repo, cache := new(UserRepoMock), new(CacheMock)
	cache.On("Get", mock.Anything, "user:email:a@b.c", mock.Anything).Return(false, nil).Once()
	repo.On("GetUserByEmail", mock.Anything, "a@b.c").Return(nil, storage.ErrUserNotFound).Once()
	svc := newService(repo, cache, new(ObserverMock))

	got, err := svc.EmailExists(context.Background(), "a@b.c")

	require.NoError(t, err)
	assert.False(t, got)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "GetUserByPhone", mock.Anything, mock.Anything)
}

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name       string
		req        models.SignupRequest
		setupMocks func(r *UserRepoMock, c *CacheMock, o *ObserverMock)
		want       int64
		wantErr    bool
	}{
		{
			name: "email signup stores email only",
			req: models.SignupRequest{
				Type: models.AccountEmail,
				Data: models.SignupInfo{Username: str("alice"), Pwd: str("pw1"), Userinfo: str("a@b.c")},
			},
			setupMocks: func(r *UserRepoMock, c *CacheMock, o *ObserverMock) {
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.NewUser) bool {
					return u.ID == "alice" && u.Password == "pw1" &&
						u.Email != nil && *u.Email == "a@b.c" && u.Phone == nil
				})).Return(&models.User{InternalID: 7, ID: "alice"}, nil).Once()
				c.On("Set", mock.Anything, "user:email:a@b.c", true, ttl).Return(nil).Once()
				o.On("ObserveSignup", "email", "created").Once()
			},
			want: 7,
		},
		{
			name: "phone signup stores phone only",
			req: models.SignupRequest{
				Type: models.AccountPhone,
				Data: models.SignupInfo{Username: str("bob"), Pwd: str("pw2"), Userinfo: str("+100")},
			},
			setupMocks: func(r *UserRepoMock, c *CacheMock, o *ObserverMock) {
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.NewUser) bool {
					return u.ID == "bob" && u.Phone != nil && *u.Phone == "+100" && u.Email == nil
				})).Return(&models.User{InternalID: 8, ID: "bob"}, nil).Once()
				c.On("Set", mock.Anything, "user:phone:+100", true, ttl).Return(nil).Once()
				o.On("ObserveSignup", "phone", "created").Once()
			},
			want: 8,
		},
		{
			// Пользователь не сохраняется, но ошибки нет.
			name: "weixin signup is silently dropped",
			req: models.SignupRequest{
				Type: models.AccountWeixin,
				Data: models.SignupInfo{Username: str("carol"), Pwd: str("pw3"), Userinfo: str("wx")},
			},
			setupMocks: func(_ *UserRepoMock, _ *CacheMock, o *ObserverMock) {
				o.On("ObserveSignup", "weixin", "unsupported").Once()
			},
			want: services.UnsupportedSignupID,
		},
		{
			name: "storage error",
			req: models.SignupRequest{
				Type: models.AccountEmail,
				Data: models.SignupInfo{Username: str("alice"), Pwd: str("pw1"), Userinfo: str("a@b.c")},
			},
			setupMocks: func(r *UserRepoMock, _ *CacheMock, o *ObserverMock) {
				r.On("CreateUser", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed")).Once()
				o.On("ObserveSignup", "email", "error").Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cache, obs := new(UserRepoMock), new(CacheMock), new(ObserverMock)
			tt.setupMocks(repo, cache, obs)
			svc := newService(repo, cache, obs)

			got, err := svc.Signup(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "services.UserService.Signup")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
			obs.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	tests := []struct {
		name       string
		req        models.LoginRequest
		setupMocks func(r *UserRepoMock, o *ObserverMock)
		want       models.LoginResult
		wantErr    error
		anyErr     bool
	}{
		{
			name: "phone login returns user id as token",
			req: models.LoginRequest{
				Type: models.AccountPhone,
				Data: models.LoginCredentials{Userinfo: str("+100"), Pwd: str("pw")},
			},
			setupMocks: func(r *UserRepoMock, o *ObserverMock) {
				r.On("CheckUserByPhone", mock.Anything, "+100", "pw").
					Return(&models.User{ID: "bob", HashedPassword: password.FakeHash("pw")}, nil).Once()
				o.On("ObserveLogin", "phone", "ok").Once()
			},
			want: models.LoginResult{Token: "bob", Username: "bob"},
		},
		{
			name: "email login returns user id as token",
			req: models.LoginRequest{
				Type: models.AccountEmail,
				Data: models.LoginCredentials{Userinfo: str("a@b.c"), Pwd: str("pw")},
			},
			setupMocks: func(r *UserRepoMock, o *ObserverMock) {
				r.On("CheckUserByEmail", mock.Anything, "a@b.c", "pw").Return(&models.User{ID: "alice"}, nil).Once()
				o.On("ObserveLogin", "email", "ok").Once()
			},
			want: models.LoginResult{Token: "alice", Username: "alice"},
		},
		{
			name: "wrong password",
			req: models.LoginRequest{
				Type: models.AccountEmail,
				Data: models.LoginCredentials{Userinfo: str("a@b.c"), Pwd: str("bad")},
			},
			setupMocks: func(r *UserRepoMock, o *ObserverMock) {
				r.On("CheckUserByEmail", mock.Anything, "a@b.c", "bad").Return(nil, storage.ErrUserNotFound).Once()
				o.On("ObserveLogin", "email", "invalid").Once()
			},
			want:    models.LoginResult{Token: "-1", Username: "-1"},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "empty password",
			req: models.LoginRequest{
				Type: models.AccountPhone,
				Data: models.LoginCredentials{Userinfo: str("+100"), Pwd: str("")},
			},
			setupMocks: func(r *UserRepoMock, o *ObserverMock) {
				r.On("CheckUserByPhone", mock.Anything, "+100", "").Return(nil, storage.ErrUserNotFound).Once()
				o.On("ObserveLogin", "phone", "invalid").Once()
			},
			want:    models.LoginResult{Token: "-1", Username: "-1"},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "weixin never touches storage",
			req: models.LoginRequest{
				Type: models.AccountWeixin,
				Data: models.LoginCredentials{Userinfo: str("code")},
			},
			setupMocks: func(_ *UserRepoMock, o *ObserverMock) {
				o.On("ObserveLogin", "weixin", "stub").Once()
			},
			want: models.LoginResult{Token: "-2", Username: "-2"},
		},
		{
			name: "storage error",
			req: models.LoginRequest{
				Type: models.AccountPhone,
				Data: models.LoginCredentials{Userinfo: str("+100"), Pwd: str("pw")},
			},
			setupMocks: func(r *UserRepoMock, o *ObserverMock) {
				r.On("CheckUserByPhone", mock.Anything, "+100", "pw").Return(nil, errors.New("timeout")).Once()
				o.On("ObserveLogin", "phone", "error").Once()
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, obs := new(UserRepoMock), new(ObserverMock)
			tt.setupMocks(repo, obs)
			svc := newService(repo, new(CacheMock), obs)

			got, err := svc.Login(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
			default:
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			repo.AssertExpectations(t)
			obs.AssertExpectations(t)
		})
	}
}

func TestUserService_Mocks(t *testing.T) {
	svc := newService(new(UserRepoMock), new(CacheMock), new(ObserverMock))
	ctx := context.Background()
	name := "someone"

	assert.Equal(t, models.SampleUserInfo(), svc.Info(ctx, "any-token"))
	assert.Equal(t, models.SampleUserProfile(), svc.Profile(ctx, "any-token", models.UIDRequest{UID: &name}))
	assert.Equal(t, models.SampleUserInfo(), svc.Update(ctx, "any-token", models.UserUpdateRequest{Username: &name}))
}
