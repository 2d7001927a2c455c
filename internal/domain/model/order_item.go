package model

import "time"

type OrderItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64     `gorm:"not null;index" json:"pedido_id"`
	ProductID int64     `gorm:"not null;index" json:"produto_id"`
	Quantity  int64     `gorm:"not null;default:1" json:"quantidade"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
}
