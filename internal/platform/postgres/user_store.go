package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/platform/logger"
	"github.com/phrazzld/stockroom-api/internal/store"
)

// userSortColumns maps the wire-level sort field names from the
// store allow-list to actual column names.
var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"userName":  "user_name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

const userColumns = `id, name, email, user_name, hashed_password, dob, phone,
		address, city, country, postal_code, bio, created_at, updated_at`

// UserStore implements the store.UserStore interface using a PostgreSQL
// database as the storage backend.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a new PostgreSQL implementation of the UserStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller. If logger is nil, a default logger
// will be used.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
// It saves a new user to the database, handling domain validation.
// Returns store.ErrEmailExists or store.ErrUserNameExists if the unique
// constraints reject the row.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if user.HashedPassword == "" {
		return domain.ErrEmptyHashedPassword
	}

	query := `
		INSERT INTO users (id, name, email, user_name, hashed_password, dob,
			phone, address, city, country, postal_code, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.UserName,
		user.HashedPassword,
		nullable(user.Dob),
		nullable(user.Phone),
		nullable(user.Address),
		nullable(user.City),
		nullable(user.Country),
		nullable(user.PostalCode),
		nullable(user.Bio),
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			log.Warn("unique violation during user creation",
				slog.String("error", err.Error()),
				slog.String("user_id", user.ID.String()))
			return dupErr
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "create", "failed to insert user", err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("user_id", id.String()))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return nil, store.NewStoreError("user", "get", "failed to query user", err)
	}

	return user, nil
}

// GetByEmailOrUserName implements store.UserStore.GetByEmailOrUserName
// It retrieves the single user whose email or username equals the given
// identifier. Returns store.ErrUserNotFound if no user matches.
func (s *UserStore) GetByEmailOrUserName(
	ctx context.Context,
	identifier string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE email = $1 OR user_name = $1`,
		userColumns,
	)

	user, err := scanUser(s.db.QueryRowContext(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by identifier")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by identifier",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "failed to query user by identifier", err)
	}

	return user, nil
}

// List implements store.UserStore.List
// Search matches name, email, or username as a case-insensitive substring.
func (s *UserStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]*domain.User, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	params = params.Normalize()

	column, ok := userSortColumns[params.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", store.ErrInvalidSortField, params.SortBy)
	}

	var where string
	var args []any
	if params.Search != "" {
		where = `WHERE name ILIKE $1 OR email ILIKE $1 OR user_name ILIKE $1`
		args = append(args, "%"+params.Search+"%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count users", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("user", "list", "failed to count users", err)
	}

	// The sort column and direction come from fixed allow-lists, never
	// from raw request input, so building the ORDER BY by hand is safe.
	query := fmt.Sprintf(
		`SELECT %s FROM users %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		userColumns, where, column, params.SortOrder, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("user", "list", "failed to query users", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, 0, store.NewStoreError("user", "list", "failed to scan user row", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("user", "list", "row iteration failed", err)
	}

	log.Debug("listed users",
		slog.Int("count", len(users)),
		slog.Int("total", total))
	return users, total, nil
}

// Update implements store.UserStore.Update
// It applies only the provided fields and always refreshes updated_at.
// The single UPDATE statement makes the existence check and the write
// atomic: zero affected rows means the user does not exist, and a unique
// violation means another user holds the new email or username.
func (s *UserStore) Update(ctx context.Context, id uuid.UUID, update store.UserUpdate) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsEmpty() {
		return store.ErrNoFieldsToUpdate
	}

	if update.Email != nil && !domain.ValidEmail(*update.Email) {
		return domain.ErrInvalidEmail
	}

	setClause, args := buildUserUpdate(update, time.Now().UTC())
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, setClause, len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			log.Warn("unique violation during user update",
				slog.String("error", err.Error()),
				slog.String("user_id", id.String()))
			return dupErr
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return store.NewStoreError("user", "update", "failed to update user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("user not found for update", slog.String("user_id", id.String()))
		return store.ErrUserNotFound
	}

	log.Info("user updated successfully", slog.String("user_id", id.String()))
	return nil
}

// Delete implements store.UserStore.Delete
// Returns store.ErrUserNotFound if the user does not exist.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return store.NewStoreError("user", "delete", "failed to delete user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("user not found for delete", slog.String("user_id", id.String()))
		return store.ErrUserNotFound
	}

	log.Info("user deleted successfully", slog.String("user_id", id.String()))
	return nil
}

// buildUserUpdate assembles the SET clause for a partial user update.
// Placeholders are numbered from $1; updated_at is always included last.
func buildUserUpdate(update store.UserUpdate, updatedAt time.Time) (string, []any) {
	var clauses []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Email != nil {
		add("email", *update.Email)
	}
	if update.UserName != nil {
		add("user_name", *update.UserName)
	}
	if update.Dob != nil {
		add("dob", nullable(*update.Dob))
	}
	if update.Phone != nil {
		add("phone", nullable(*update.Phone))
	}
	if update.Address != nil {
		add("address", nullable(*update.Address))
	}
	if update.City != nil {
		add("city", nullable(*update.City))
	}
	if update.Country != nil {
		add("country", nullable(*update.Country))
	}
	if update.PostalCode != nil {
		add("postal_code", nullable(*update.PostalCode))
	}
	if update.Bio != nil {
		add("bio", nullable(*update.Bio))
	}

	add("updated_at", updatedAt)

	return strings.Join(clauses, ", "), args
}

// rowScanner abstracts *sql.Row and *sql.Rows for the scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one user row into a domain.User.
func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var userName, dob, phone, address, city, country, postalCode, bio sql.NullString

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&userName,
		&user.HashedPassword,
		&dob,
		&phone,
		&address,
		&city,
		&country,
		&postalCode,
		&bio,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.UserName = userName.String
	user.Dob = dob.String
	user.Phone = phone.String
	user.Address = address.String
	user.City = city.String
	user.Country = country.String
	user.PostalCode = postalCode.String
	user.Bio = bio.String

	return &user, nil
}

// nullable converts an empty string to a SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
