package entity

import "time"

type Review struct {
	ID            int64     `db:"id" json:"id"`
	ProductID     int64     `db:"product_id" json:"-"`
	ReviewerEmail string    `db:"reviewer_email" json:"reviewerEmail"`
	ReviewerName  string    `db:"reviewer_name" json:"reviewerName"`
	Rating        int       `db:"rating" json:"rating"` // 1-5
	Review        string    `db:"review" json:"review"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
