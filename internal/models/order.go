package models

import "time"

// Order represents a customer order.
//
// Products is the read view returned by the server. ProductIDs is the write view:
// clients send the selected product identities there on create and update.
type Order struct {
	ID         int64     `json:"id,omitempty" gorm:"primaryKey;autoIncrement"`
	OrderDate  time.Time `json:"orderDate" gorm:"not null"`
	TotalPrice float64   `json:"totalPrice" gorm:"not null" validate:"gte=0"`
	AccountID  int64     `json:"-" gorm:"not null;index"`
	Account    *Account  `json:"account,omitempty" gorm:"constraint:OnDelete:CASCADE;" validate:"-"`
	Products   []Product `json:"products,omitempty" gorm:"many2many:order_product;"`
	ProductIDs []int64   `json:"productIds,omitempty" gorm:"-"`
}
