package model

import "time"

// アカウント種別
type Role string

const (
	RoleCustomer   Role = "cliente"
	RoleRestaurant Role = "restaurante"
)

// ParseRoleは公開APIのtipo値をRoleへ変換する。未知の値はfalse。
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleRestaurant:
		return Role(s), true
	default:
		return "", false
	}
}

// JSONタグは公開API（pt-BR）の項目名。senha_hashはレスポンスに出さない。
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"nome"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:senha_hash;type:varchar(512);not null" json:"-"`
	Role         Role      `gorm:"column:tipo;type:varchar(20);not null" json:"tipo"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
