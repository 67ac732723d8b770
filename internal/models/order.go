package models

import "time"

// OrderItem is a single line within an order. Price is the snapshot taken at
// placement time; Length and Weight are the resolved measurements (override or
// catalog default). ProductID is a weak reference: the product may be changed
// or deleted later without touching historical lines.
type OrderItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36)"`
	Product   *Product  `json:"product,omitempty"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Length    float64   `json:"length"`
	Weight    float64   `json:"weight"`
	CreatedAt time.Time `json:"created_at"`
}

// Order represents a placed customer order. Total is the sum of
// price*quantity over its items at creation time; it is never recomputed from
// current catalog prices.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	UserID    string      `json:"user_id" gorm:"index;type:varchar(36)"`
	User      *User       `json:"user,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
