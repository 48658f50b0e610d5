package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/uniswap/internal/lib/password"
	"github.com/magabrotheeeer/uniswap/internal/models"
)

// Уникальность id, email и phone не гарантируется, поэтому при дублях
// выборка возвращает строку с наименьшим internal_id.
const selectUser = `SELECT internal_id, id, email, phone, hashed_password
			  FROM users `

// GetUserByID возвращает первого пользователя с внешним идентификатором id.
func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.GetUserByID"
	return s.queryUser(ctx, op, selectUser+`WHERE id = $1
			  ORDER BY internal_id LIMIT 1`, id)
}

// GetUserByPhone возвращает первого пользователя с телефоном phone.
func (s *Storage) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	const op = "storage.GetUserByPhone"
	return s.queryUser(ctx, op, selectUser+`WHERE phone = $1
			  ORDER BY internal_id LIMIT 1`, phone)
}

// GetUserByEmail возвращает первого пользователя с почтой email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	return s.queryUser(ctx, op, selectUser+`WHERE email = $1
			  ORDER BY internal_id LIMIT 1`, email)
}

// CheckUserByPhone ищет пользователя по телефону и паролю.
func (s *Storage) CheckUserByPhone(ctx context.Context, phone, pwd string) (*models.User, error) {
	const op = "storage.CheckUserByPhone"
	return s.queryUser(ctx, op, selectUser+`WHERE phone = $1 AND hashed_password = $2
			  ORDER BY internal_id LIMIT 1`, phone, password.FakeHash(pwd))
}

// CheckUserByEmail ищет пользователя по почте и паролю.
func (s *Storage) CheckUserByEmail(ctx context.Context, email, pwd string) (*models.User, error) {
	const op = "storage.CheckUserByEmail"
	return s.queryUser(ctx, op, selectUser+`WHERE email = $1 AND hashed_password = $2
			  ORDER BY internal_id LIMIT 1`, email, password.FakeHash(pwd))
}

// CreateUser сохраняет пользователя без проверки на дубли и возвращает
// сохранённую строку с присвоенным internal_id.
func (s *Storage) CreateUser(ctx context.Context, user models.NewUser) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	created := &models.User{
		ID:             user.ID,
		Email:          user.Email,
		Phone:          user.Phone,
		HashedPassword: password.FakeHash(user.Password),
	}

	query := `INSERT INTO users (id, email, phone, hashed_password)
			  VALUES ($1, $2, $3, $4)
			  RETURNING internal_id`
	if err := s.DB.QueryRowContext(ctx, query,
		created.ID, created.Email, created.Phone, created.HashedPassword).Scan(&created.InternalID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s *Storage) queryUser(ctx context.Context, op, query string, args ...any) (*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var (
		u            models.User
		email, phone sql.NullString
	)
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&u.InternalID, &u.ID, &email, &phone, &u.HashedPassword); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if email.Valid {
		u.Email = &email.String
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	return &u, nil
}
