package user

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey"`
	Username  string    `gorm:"column:username;uniqueIndex;not null"`
	Email     string    `gorm:"column:email;index"`
	Name      string    `gorm:"column:name"`
	// password verification happens in the authorization server; the hash
	// is stored here because this service owns the users table
	PasswordHash string `gorm:"column:password_hash"`
	Verified  bool      `gorm:"column:verified;default:false"`
	Enabled   bool      `gorm:"column:enabled;default:false"`
	Master    bool      `gorm:"column:master;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`

	Groups      []Group     `gorm:"many2many:user_groups;"`
	Authorities []Authority `gorm:"many2many:user_authorities;"`
}

func (User) TableName() string { return "users" }

type Group struct {
	ID          int64     `gorm:"primaryKey"`
	Code        string    `gorm:"column:code;uniqueIndex;not null"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;default:now()"`
}

func (Group) TableName() string { return "groups" }

type Authority struct {
	ID              int64     `gorm:"primaryKey"`
	RoleCode        string    `gorm:"column:role_code;uniqueIndex;not null"`
	RoleDescription string    `gorm:"column:role_description"`
	CreatedAt       time.Time `gorm:"column:created_at;default:now()"`
}

func (Authority) TableName() string { return "authorities" }
