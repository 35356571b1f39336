package entity

import "time"

// Product is a listing owned by one seller. Seller identity is denormalized
// onto every product; there is no separate seller table.
type Product struct {
	ID                 int64     `db:"id" json:"id"`
	SellerEmail        string    `db:"seller_email" json:"sellerEmail"`
	SellerName         string    `db:"seller_name" json:"sellerName"`
	SellerBusinessName *string   `db:"seller_business_name" json:"sellerBusinessName,omitempty"`
	SellerStory        *string   `db:"seller_story" json:"sellerStory,omitempty"`
	Name               string    `db:"name" json:"name"`
	Description        string    `db:"description" json:"description"`
	Category           string    `db:"category" json:"category"` // lower-cased
	Price              float64   `db:"price" json:"price"`
	ImageURL           *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	Reviews            []Review  `json:"reviews"`
}
