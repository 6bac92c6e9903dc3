package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/migrations"
	"github.com/MKhiriev/go-user-admin/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles all reads and writes against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned UserID.
//
// On postgres the INSERT carries a RETURNING clause because the pgx stdlib
// driver does not implement LastInsertId; on sqlite the id comes from the
// driver's result.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if r.db.dialect == migrations.DialectPostgres {
		query, args, err := insertUser(r.db.statementBuilder(), user).Suffix("RETURNING id").ToSql()
		if err != nil {
			return models.User{}, fmt.Errorf("error building sql query: %w", err)
		}

		if err = r.db.QueryRowxContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
			return models.User{}, r.mapError(err)
		}

		return user, nil
	}

	query, args, err := insertUser(r.db.statementBuilder(), user).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, r.mapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: reading inserted id")
		return models.User{}, r.mapError(err)
	}

	user.UserID = id
	return user, nil
}

// GetUser retrieves the user record whose id matches the argument.
//
// Error handling:
//   - absent row → [ErrUserNotFound]
//   - any other driver-level error → wrapped into [ErrUnexpectedDB]
func (r *userRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUserByID(r.db.statementBuilder(), id).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	var user models.User
	if err = r.db.GetContext(ctx, &user, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.GetUser").Int64("id", id).Msg("error: select failed")
		return models.User{}, r.mapError(err)
	}

	return user, nil
}

// ListUsers returns every user row ordered by id. An empty table yields an
// empty slice, not an error.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllUsers(r.db.statementBuilder()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	users := make([]models.User, 0)
	if err = r.db.SelectContext(ctx, &users, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: select failed")
		return nil, r.mapError(err)
	}

	return users, nil
}

// UpdateUser rewrites name, email and age of the row matching user.UserID.
//
// Error handling:
//   - zero affected rows → [ErrUserNotFound]
//   - any driver-level error → mapped via the dialect's classifier
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := updateUser(r.db.statementBuilder(), user).ToSql()
	if err != nil {
		return fmt.Errorf("error building sql query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", user.UserID).Msg("error: update failed")
		return r.mapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: reading affected rows")
		return r.mapError(err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// DeleteUser removes the row matching id and reports the affected-row count.
// The caller distinguishes "deleted" from "was never there" by the count.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := deleteUser(r.db.statementBuilder(), id).ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building sql query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("error: delete failed")
		return 0, r.mapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: reading affected rows")
		return 0, r.mapError(err)
	}

	return affected, nil
}

// FindUserByEmail retrieves the user record whose e-mail matches the
// argument. Because the schema does not enforce uniqueness, the query is
// bounded to the lowest-id match.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectUserByEmail(r.db.statementBuilder(), email).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	var user models.User
	if err = r.db.GetContext(ctx, &user, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: select failed")
		return models.User{}, r.mapError(err)
	}

	return user, nil
}

// mapError reduces a driver error to the repository's sentinel set using the
// dialect's classifier. The original error stays attached for logging.
func (r *userRepository) mapError(err error) error {
	switch r.db.errorClassifier.Classify(err) {
	case KindNotFound:
		return ErrUserNotFound
	default:
		return fmt.Errorf("%w: %w", ErrUnexpectedDB, err)
	}
}
