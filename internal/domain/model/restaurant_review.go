package model

import "time"

// レストランへの評価。注文履歴との突き合わせはしない。
type RestaurantReview struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RestaurantID int64     `gorm:"not null;index" json:"restaurante_id"`
	CustomerID   int64     `gorm:"not null;index" json:"cliente_id"`
	Rating       int       `gorm:"not null" json:"nota"`
	Comment      string    `gorm:"type:text" json:"comentario"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
