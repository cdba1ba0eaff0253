package models

import "time"

// OrderStatus represents all possible states of an order in the kitchen
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusReady      OrderStatus = "Ready"
	StatusDelivered  OrderStatus = "Delivered"
)

type Order struct {
	CustomerName string
	ItemName     string // snapshot of the menu item name at order time
	Quantity     int
	Status       OrderStatus
	TotalAmount  float64 // snapshot price, never recalculated from the menu
	OrderTime    time.Time
}
