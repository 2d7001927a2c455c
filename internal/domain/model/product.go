package model

import "time"

type Product struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"nome"`
	Price        float64   `gorm:"not null" json:"preco"`
	Description  string    `gorm:"type:text" json:"descricao"`
	Photo        string    `gorm:"type:varchar(255)" json:"foto"`
	RestaurantID int64     `gorm:"not null;index" json:"restaurante_id"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
