package auth

import (
	"database/sql"
	"fmt"

	"github.com/frahmantamala/user-admin/internal/auth"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetUserWithAuthorities(username string) (*auth.User, error) {
	var user auth.User

	query := `SELECT id, username, name, enabled FROM users WHERE username = ?`

	row := r.db.Raw(query, username).Row()
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.Enabled); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	roleQuery := `SELECT a.role_code
	             FROM authorities a
	             JOIN user_authorities ua ON a.id = ua.authority_id
	             WHERE ua.user_id = ?`

	rows, err := r.db.Raw(roleQuery, user.ID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authorities []string
	for rows.Next() {
		var roleCode string
		if err := rows.Scan(&roleCode); err != nil {
			return nil, err
		}
		authorities = append(authorities, roleCode)
	}

	user.Authorities = authorities
	return &user, nil
}
