package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/darazkeeper/internal/common"
	"github.com/dmitrijs2005/darazkeeper/internal/dbx"
	"github.com/dmitrijs2005/darazkeeper/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, first_name, last_name, email, password, daraz_store_link)
			VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.Password, user.DarazStoreLink)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, first_name, last_name, email, password, daraz_store_link
		FROM users WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepository) GetByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	query := `SELECT id, first_name, last_name, email, password, daraz_store_link
		FROM users WHERE email = ? AND password = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email, password))
}

func (r *SQLiteRepository) Update(ctx context.Context, user *models.User) (bool, error) {
	query := `UPDATE users SET first_name = ?, last_name = ?, email = ?, password = ?, daraz_store_link = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Password, user.DarazStoreLink, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}

func (r *SQLiteRepository) scanOne(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.DarazStoreLink)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return u, nil
}
