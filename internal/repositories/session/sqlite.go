package session

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
// The session table holds at most one row (id = 1).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Set(ctx context.Context, user *models.User) error {
	query := `INSERT INTO session (id, user_id, first_name, last_name, email, password, daraz_store_link)
			VALUES (1, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id,
				first_name = excluded.first_name,
				last_name = excluded.last_name,
				email = excluded.email,
				password = excluded.password,
				daraz_store_link = excluded.daraz_store_link
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Email, user.Password, user.DarazStoreLink)
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.User, error) {
	query := `SELECT user_id, first_name, last_name, email, password, daraz_store_link
		FROM session WHERE id = 1`

	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.DarazStoreLink)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
