package model

import "time"

// 注文への評価。notaの範囲チェックは行わない（API契約どおり）。
type OrderReview struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64     `gorm:"not null;index" json:"pedido_id"`
	CustomerID int64     `gorm:"not null;index" json:"cliente_id"`
	Rating     int       `gorm:"not null" json:"nota"`
	Comment    string    `gorm:"type:text" json:"comentario"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
