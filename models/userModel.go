package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName        string         `json:"fullName"`
	Email           string         `json:"email" gorm:"uniqueIndex;size:191"`
	Phone           string         `json:"phone"`
	Password        string         `json:"password"`
	Role            string         `json:"role"`
	Preferences     datatypes.JSON `json:"preferences"`
	SubscribeToNews bool           `json:"subscribeToNews"`
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
