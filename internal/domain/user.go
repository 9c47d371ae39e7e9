package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FullName     string     `json:"fullName"`
	PhoneNumber  string     `gorm:"uniqueIndex" json:"phoneNumber"`
	Role         Role       `gorm:"default:user" json:"role"`
	IsVerified   bool       `gorm:"default:false" json:"isVerified"`
	OTP          string     `json:"-"`
	OTPCreatedAt *time.Time `json:"-"`
	ResetToken   string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
