package domain

import "time"

type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"column:username;size:50;unique;not null" json:"username"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	Name      string    `gorm:"column:name;size:50" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}
