package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cinelog/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const userColumns = `id, email, username, name, password_hash, bio, profile_image, reset_token, reset_token_used, created_at`

const (
	insertUserSQL = `INSERT INTO users (id, email, username, name, password_hash, bio, profile_image, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	selectUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	selectUserByLoginSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ? OR username = ?`
	searchUsersSQL       = `SELECT ` + userColumns + ` FROM users WHERE username LIKE ? AND LOWER(name) LIKE LOWER(?)`
	updateUserSQL        = `UPDATE users SET username = ?, name = ?, bio = ?, profile_image = ? WHERE id = ?`
	deleteUserSQL        = `DELETE FROM users WHERE id = ?`
	setResetTokenSQL     = `UPDATE users SET reset_token = ?, reset_token_used = 0 WHERE id = ?`
	consumeResetSQL      = `UPDATE users SET password_hash = ?, reset_token_used = 1 WHERE id = ?`
)

func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Email, u.Username, u.Name, u.PasswordHash, u.Bio, u.ProfileImage, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.PasswordHash,
		&u.Bio, &u.ProfileImage, &u.ResetToken, &u.ResetTokenUsed, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", id, err)
	}
	return u, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email))
	if err != nil {
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return u, nil
}

// GetByLogin fetches a user by email or username, whichever matches.
func (r *UserRepository) GetByLogin(ctx context.Context, emailOrUsername string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByLoginSQL, emailOrUsername, emailOrUsername))
	if err != nil {
		return nil, fmt.Errorf("select user by login: %w", err)
	}
	return u, nil
}

// Search lists users matching the filter; a zero filter matches all.
func (r *UserRepository) Search(ctx context.Context, f models.UserFilter) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, searchUsersSQL, "%"+f.Username+"%", "%"+f.Name+"%")
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.PasswordHash,
			&u.Bio, &u.ProfileImage, &u.ResetToken, &u.ResetTokenUsed, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Update persists the mutable profile fields.
func (r *UserRepository) Update(ctx context.Context, u models.User) error {
	res, err := r.db.ExecContext(ctx, updateUserSQL, u.Username, u.Name, u.Bio, u.ProfileImage, u.ID)
	if err != nil {
		return fmt.Errorf("update user %q: %w", u.ID, err)
	}
	return requireRowAffected(res, "user", u.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("delete user %q: %w", id, err)
	}
	return requireRowAffected(res, "user", id)
}

// SetResetToken stores a fresh reset token and clears the used flag.
func (r *UserRepository) SetResetToken(ctx context.Context, id, token string) error {
	res, err := r.db.ExecContext(ctx, setResetTokenSQL, token, id)
	if err != nil {
		return fmt.Errorf("set reset token for %q: %w", id, err)
	}
	return requireRowAffected(res, "user", id)
}

// ConsumeResetToken writes the new password hash and marks the stored
// token used in one statement.
func (r *UserRepository) ConsumeResetToken(ctx context.Context, id, newPasswordHash string) error {
	res, err := r.db.ExecContext(ctx, consumeResetSQL, newPasswordHash, id)
	if err != nil {
		return fmt.Errorf("consume reset token for %q: %w", id, err)
	}
	return requireRowAffected(res, "user", id)
}

// requireRowAffected converts a zero-row write into sql.ErrNoRows so
// services can map it to not-found.
func requireRowAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for %s %q: %w", entity, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", entity, id, sql.ErrNoRows)
	}
	return nil
}
