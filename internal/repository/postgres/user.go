package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/userhub/user-service/internal/criteria"
	"github.com/userhub/user-service/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, first_name, last_name, nick_name, password, email, country
		FROM users
		ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (model.User, error) {
	query := `
		SELECT id, first_name, last_name, nick_name, password, email, country
		FROM users
		WHERE id = $1`

	var user model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Nickname,
		&user.Password, &user.Email, &user.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, err
	}

	return user, nil
}

// FindByFilter executes the conjunctive filter against the users table.
// A nil filter is an unrestricted scan.
func (r *UserRepository) FindByFilter(ctx context.Context, filter *criteria.Filter) ([]model.User, error) {
	query, _, err := selectUsers(filter).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build filter query: %w", err)
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *UserRepository) Save(ctx context.Context, user model.User) (model.User, error) {
	if user.ID == 0 {
		return r.insert(ctx, user)
	}
	return r.update(ctx, user)
}

func (r *UserRepository) insert(ctx context.Context, user model.User) (model.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, nick_name, password, email, country)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, first_name, last_name, nick_name, password, email, country`

	var saved model.User
	err := r.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Nickname,
		user.Password, user.Email, user.Country,
	).Scan(
		&saved.ID, &saved.FirstName, &saved.LastName, &saved.Nickname,
		&saved.Password, &saved.Email, &saved.Country,
	)
	if err != nil {
		return model.User{}, translateSaveError(err)
	}

	return saved, nil
}

func (r *UserRepository) update(ctx context.Context, user model.User) (model.User, error) {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, nick_name = $4, password = $5, email = $6, country = $7
		WHERE id = $1
		RETURNING id, first_name, last_name, nick_name, password, email, country`

	var saved model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Nickname,
		user.Password, user.Email, user.Country,
	).Scan(
		&saved.ID, &saved.FirstName, &saved.LastName, &saved.Nickname,
		&saved.Password, &saved.Email, &saved.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, translateSaveError(err)
	}

	return saved, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id uint64) error {
	const query = `DELETE FROM users WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanUsers(rows pgx.Rows) ([]model.User, error) {
	var users []model.User
	for rows.Next() {
		var user model.User
		err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.Nickname,
			&user.Password, &user.Email, &user.Country,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// translateSaveError maps engine constraint violations (SQLSTATE class
// 23) to model.ErrRejected so callers see the service taxonomy instead
// of driver internals.
func translateSaveError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return fmt.Errorf("%w: %s", model.ErrRejected, pgErr.Message)
	}
	return err
}
