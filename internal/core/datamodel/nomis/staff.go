package nomis

type Staff struct {
	StaffID   int64  `gorm:"primaryKey;column:staff_id"`
	FirstName string `gorm:"column:first_name;not null"`
	LastName  string `gorm:"column:last_name;not null"`
	Status    string `gorm:"column:status;not null"`
}

func (Staff) TableName() string { return "staff" }

type StaffUserAccount struct {
	Username string `gorm:"primaryKey;column:username"`
	StaffID  int64  `gorm:"column:staff_id;not null"`

	Staff         Staff         `gorm:"foreignKey:StaffID;references:StaffID"`
	AccountDetail AccountDetail `gorm:"foreignKey:Username;references:Username"`
}

func (StaffUserAccount) TableName() string { return "staff_user_accounts" }

type AccountDetail struct {
	Username      string `gorm:"primaryKey;column:username"`
	AccountStatus string `gorm:"column:account_status"`
	ProfileName   string `gorm:"column:profile_name"`
}

func (AccountDetail) TableName() string { return "account_details" }
