// Package model holds the shapes of the records kept in the realtime store.
package model

// ProductModel is the node stored under products/<productID>.
type ProductModel struct {
	ProductID   string  `json:"productID"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
