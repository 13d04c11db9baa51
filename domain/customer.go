package domain

import "time"

// Customer is a retail buyer account ("supermarket"). Login is gated on IsActive.
type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"column:name;size:100;not null" json:"name"`
	ContactPerson string    `gorm:"column:contact_person;size:50" json:"contact_person"`
	Phone         string    `gorm:"column:phone;size:30" json:"phone"`
	Address       string    `gorm:"column:address;size:200" json:"address"`
	Username      string    `gorm:"column:username;size:50;unique;not null" json:"username"`
	Password      string    `gorm:"column:password;size:255;not null" json:"-"`
	IsActive      bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Customer) TableName() string {
	return "supermarkets"
}
