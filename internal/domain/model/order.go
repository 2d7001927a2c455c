package model

import "time"

// statusは自由文字列。レストラン側の更新で無条件に置き換わる。
const OrderStatusPending = "pendente"

type Order struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pendente'" json:"status"`
	TotalPrice float64   `gorm:"not null;default:0" json:"valor_total"`
	CustomerID int64     `gorm:"not null;index" json:"cliente_id"`
	Address    string    `gorm:"type:varchar(255)" json:"endereco"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
