// Package services содержит бизнес-логику регистрации, входа и проверки
// существования пользователей.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/uniswap/internal/lib/sl"
	"github.com/magabrotheeeer/uniswap/internal/models"
	"github.com/magabrotheeeer/uniswap/internal/storage"
)

// UnsupportedSignupID возвращается Signup для типа, который не сохраняется.
const UnsupportedSignupID int64 = -1

// Значения token/username в ответе /user/login для особых исходов.
const (
	InvalidLoginMarker = "-1"
	WeixinLoginMarker  = "-2"
)

// ErrInvalidCredentials возвращается Login, если пара логин/пароль не найдена.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// GetUserByPhone возвращает первого пользователя с указанным телефоном.
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	// GetUserByEmail возвращает первого пользователя с указанной почтой.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CheckUserByPhone(ctx context.Context, phone, pwd string) (*models.User, error)
	CheckUserByEmail(ctx context.Context, email, pwd string) (*models.User, error)
	// CreateUser сохраняет пользователя без проверки уникальности.
	CreateUser(ctx context.Context, user models.NewUser) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Observer принимает счётчики регистраций и входов.
type Observer interface {
	ObserveSignup(accountType, result string)
	ObserveLogin(accountType, result string)
}

// UserService реализует регистрацию, вход и заглушки профиля.
type UserService struct {
	repo     UserRepository
	cache    Cache
	cacheTTL time.Duration
	metrics  Observer
	log      *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, cache Cache, cacheTTL time.Duration, metrics Observer, log *slog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		log:      log,
	}
}

func phoneKey(phone string) string { return "user:phone:" + phone }
func emailKey(email string) string { return "user:email:" + email }

// PhoneExists сообщает, зарегистрирован ли хотя бы один пользователь с телефоном.
func (s *UserService) PhoneExists(ctx context.Context, phone string) (bool, error) {
	const op = "services.UserService.PhoneExists"
	return s.exists(ctx, op, phoneKey(phone), func() (*models.User, error) {
		return s.repo.GetUserByPhone(ctx, phone)
	})
}

// EmailExists сообщает, зарегистрирован ли хотя бы один пользователь с почтой.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	const op = "services.UserService.EmailExists"
	return s.exists(ctx, op, emailKey(email), func() (*models.User, error) {
		return s.repo.GetUserByEmail(ctx, email)
	})
}

// exists сначала смотрит в кеш, затем в хранилище. В кеш попадают только
// положительные ответы: пользователи не удаляются.
func (s *UserService) exists(ctx context.Context, op, key string, lookup func() (*models.User, error)) (bool, error) {
	var cached bool
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("cache get failed", sl.Op(op), sl.Err(err))
	} else if found && cached {
		return true, nil
	}

	_, err = lookup()
	if errors.Is(err, storage.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, key, true, s.cacheTTL); err != nil {
		s.log.Warn("cache set failed", sl.Op(op), sl.Err(err))
	}
	return true, nil
}

// Signup сохраняет пользователя для типов email и phone и возвращает его
// внутренний id. Для остальных типов ничего не сохраняется и возвращается
// UnsupportedSignupID без ошибки.
func (s *UserService) Signup(ctx context.Context, req models.SignupRequest) (int64, error) {
	const op = "services.UserService.Signup"

	info := models.Text(req.Data.Userinfo)
	user := models.NewUser{
		ID:       models.Text(req.Data.Username),
		Password: models.Text(req.Data.Pwd),
	}
	var key string
	switch req.Type {
	case models.AccountEmail:
		user.Email = &info
		key = emailKey(info)
	case models.AccountPhone:
		user.Phone = &info
		key = phoneKey(info)
	default:
		// FIXME: клиент получает SUCCESS, хотя пользователь не создан.
		s.log.Warn("signup type is not persisted", sl.Op(op), slog.String("type", string(req.Type)))
		s.metrics.ObserveSignup(string(req.Type), "unsupported")
		return UnsupportedSignupID, nil
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		s.metrics.ObserveSignup(string(req.Type), "error")
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.ObserveSignup(string(req.Type), "created")

	if err := s.cache.Set(ctx, key, true, s.cacheTTL); err != nil {
		s.log.Warn("cache set failed", sl.Op(op), sl.Err(err))
	}
	return created.InternalID, nil
}

// Login проверяет пару логин/пароль. Токеном служит id пользователя.
// Вход через weixin не реализован и всегда возвращает WeixinLoginMarker.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	const op = "services.UserService.Login"

	var (
		user *models.User
		err  error
	)
	info, pwd := models.Text(req.Data.Userinfo), models.Text(req.Data.Pwd)
	switch req.Type {
	case models.AccountPhone:
		user, err = s.repo.CheckUserByPhone(ctx, info, pwd)
	case models.AccountEmail:
		user, err = s.repo.CheckUserByEmail(ctx, info, pwd)
	default:
		s.metrics.ObserveLogin(string(req.Type), "stub")
		return models.LoginResult{Token: WeixinLoginMarker, Username: WeixinLoginMarker}, nil
	}

	if errors.Is(err, storage.ErrUserNotFound) {
		s.metrics.ObserveLogin(string(req.Type), "invalid")
		return models.LoginResult{Token: InvalidLoginMarker, Username: InvalidLoginMarker},
			fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err != nil {
		s.metrics.ObserveLogin(string(req.Type), "error")
		return models.LoginResult{}, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.ObserveLogin(string(req.Type), "ok")
	return models.LoginResult{Token: user.ID, Username: user.ID}, nil
}

// Info возвращает заглушку информации о текущем пользователе.
func (s *UserService) Info(_ context.Context, _ string) models.UserInfo {
	return models.SampleUserInfo()
}

// Profile возвращает заглушку профиля пользователя.
func (s *UserService) Profile(_ context.Context, _ string, _ models.UIDRequest) models.UserProfile {
	return models.SampleUserProfile()
}

// Update принимает изменения профиля, но ничего не сохраняет.
func (s *UserService) Update(_ context.Context, _ string, _ models.UserUpdateRequest) models.UserInfo {
	return models.SampleUserInfo()
}
