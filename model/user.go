package model

type User struct {
	DTO
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex" json:"email"`
	Role  string `gorm:"size:20;not null;default:'customer'" json:"role"`
}
