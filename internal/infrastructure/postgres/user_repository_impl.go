package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinespot/cinespot-api/internal/domain/entity"
	"github.com/cinespot/cinespot-api/internal/domain/repository"
)

const uniqueViolation = "23505"

// UserRepository is the Postgres account store. OTP slots map onto the
// paired (code, expires_at) columns; an absent slot is ('', NULL).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_verified, created_at, updated_at
	`, u.Email, u.Password, u.Name, u.AvatarURL)

	if err := row.Scan(&u.ID, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

const selectUser = `
	SELECT id, email, password_hash, name, avatar_url, is_verified,
	       verify_otp, verify_otp_expires_at, reset_otp, reset_otp_expires_at,
	       created_at, updated_at
	FROM users
`

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.get(ctx, selectUser+`WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.get(ctx, selectUser+`WHERE email = $1`, email)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*entity.User, error) {
	u := &entity.User{}
	var verifyCode, resetCode string
	var verifyExp, resetExp *time.Time

	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.AvatarURL, &u.IsVerified,
		&verifyCode, &verifyExp, &resetCode, &resetExp,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	u.VerifyOTP = slotFromColumns(verifyCode, verifyExp)
	u.ResetOTP = slotFromColumns(resetCode, resetExp)
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	verifyCode, verifyExp := slotToColumns(u.VerifyOTP)
	resetCode, resetExp := slotToColumns(u.ResetOTP)

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, name = $3, avatar_url = $4,
		    is_verified = $5,
		    verify_otp = $6, verify_otp_expires_at = $7,
		    reset_otp = $8, reset_otp_expires_at = $9,
		    updated_at = $10
		WHERE id = $11
	`, u.Email, u.Password, u.Name, u.AvatarURL,
		u.IsVerified,
		verifyCode, verifyExp, resetCode, resetExp,
		u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func slotFromColumns(code string, exp *time.Time) entity.OTPSlot {
	if code == "" || exp == nil {
		return entity.OTPSlot{}
	}
	return entity.PendingOTP(code, *exp)
}

func slotToColumns(s entity.OTPSlot) (string, *time.Time) {
	if !s.Pending() {
		return "", nil
	}
	exp := s.ExpiresAt()
	return s.Code(), &exp
}

var _ repository.UserRepository = (*UserRepository)(nil)
