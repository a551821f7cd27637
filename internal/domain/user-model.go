package domain

import "gorm.io/gorm"

type User struct {
	UniqueID     string `gorm:"type:varchar(64);uniqueIndex;not null" json:"unique_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Phone        string `gorm:"type:varchar(20);not null" json:"phone"`
	PasswordHash string `json:"-"`
	PinHash      string `json:"-"`
	gorm.Model
}
