package postgres

import (
	userDatamodel "github.com/frahmantamala/user-admin/internal/core/datamodel/user"
	"github.com/frahmantamala/user-admin/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.RepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsernameAndMasterIsTrue(username string) (*user.AuthUser, error) {
	var dm userDatamodel.User
	err := r.db.
		Preload("Groups").
		Preload("Authorities").
		Where("username = ? AND master = ?", username, true).
		First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return user.FromDataModel(&dm), nil
}

func (r *UserRepository) FindByUsername(username string) (*user.AuthUser, error) {
	var dm userDatamodel.User
	err := r.db.
		Preload("Groups").
		Preload("Authorities").
		Where("username = ?", username).
		First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &user.NotFoundError{Username: username}
		}
		return nil, err
	}
	return user.FromDataModel(&dm), nil
}

func (r *UserRepository) FindByEmailAndMasterIsTrueOrderByUsername(email string) ([]*user.AuthUser, error) {
	var dms []*userDatamodel.User
	err := r.db.
		Preload("Groups").
		Preload("Authorities").
		Where("email = ? AND master = ?", email, true).
		Order("username ASC").
		Find(&dms).Error
	if err != nil {
		return nil, err
	}

	users := make([]*user.AuthUser, 0, len(dms))
	for _, dm := range dms {
		users = append(users, user.FromDataModel(dm))
	}
	return users, nil
}

// Save persists scalar user fields. Group and authority membership is
// managed through separate administration flows, and the password hash is
// owned by the credential workflow, so both are left untouched here.
func (r *UserRepository) Save(u *user.AuthUser) error {
	dm := user.ToDataModel(u)
	return r.db.Omit("Groups", "Authorities", "PasswordHash").Save(dm).Error
}
