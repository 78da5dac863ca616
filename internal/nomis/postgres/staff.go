package postgres

import (
	nomisDatamodel "github.com/frahmantamala/user-admin/internal/core/datamodel/nomis"
	"github.com/frahmantamala/user-admin/internal/nomis"
	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) nomis.RepositoryAPI {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) FindByUsername(username string) (*nomis.StaffUserAccount, error) {
	var dm nomisDatamodel.StaffUserAccount
	err := r.db.
		Preload("Staff").
		Preload("AccountDetail").
		Where("username = ?", username).
		First(&dm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return nomis.FromDataModel(&dm), nil
}
