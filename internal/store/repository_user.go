package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user.
//
// Error handling:
//   - unique violation on the user id or handle → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.BackendUser) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindUser returns the user registered under userID.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUser(ctx context.Context, userID string) (models.BackendUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, userID)
	if err != nil {
		return models.BackendUser{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user      models.BackendUser
		authHash  string
		createdAt int64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.Handle, &user.UserID, &authHash, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.BackendUser{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("error selecting user")
		return models.BackendUser{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if user.AuthHash, err = decodeHash(authHash); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUser").Msg("stored auth hash is not base64")
		return models.BackendUser{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.CreatedAt = fromMillis(createdAt)

	return user, nil
}

// DeleteUser removes the user. Deleting an absent user is not an error.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
