package model

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `json:"username" gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Role         Role      `json:"role" gorm:"size:10;not null;index"`
	Results      []Result  `json:"results,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt    time.Time `json:"created_at"`
}
