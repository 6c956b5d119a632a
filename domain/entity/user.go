package entity

type User struct {
	Id           uint64 `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"column:email;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"column:password_hash"`
	FullName     string `json:"full_name" gorm:"column:full_name"`
	Company      string `json:"company" gorm:"column:company"`
	IsActive     bool   `json:"is_active" gorm:"column:is_active"`
	CreatedAt    int64  `json:"created_at" gorm:"column:created_at;autoCreateTime:milli"`
	UpdatedAt    int64  `json:"updated_at" gorm:"column:updated_at;autoUpdateTime:milli"`
}

func (u *User) TableName() string {
	return "user"
}
