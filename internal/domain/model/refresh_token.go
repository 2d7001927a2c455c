package model

import "time"

// リフレッシュトークン。平文は保存せずsha-256ハッシュのみ持つ。
type RefreshToken struct {
	ID        string     `gorm:"type:uuid;primaryKey" json:"-"`
	UserID    int64      `gorm:"not null;index" json:"-"`
	TokenHash string     `gorm:"not null;uniqueIndex" json:"-"`
	UserAgent string     `gorm:"not null" json:"-"`
	ExpiresAt time.Time  `gorm:"not null;index" json:"-"`
	UsedAt    *time.Time `gorm:"index" json:"-"`
	RevokedAt *time.Time `gorm:"index" json:"-"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime" json:"-"`
}
