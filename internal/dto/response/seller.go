package response

import "handcrafted-haven/internal/data/entity"

type SellerProfileResponse struct {
	SellerEmail        string            `json:"sellerEmail"`
	SellerName         string            `json:"sellerName"`
	SellerBusinessName *string           `json:"sellerBusinessName,omitempty"`
	SellerStory        string            `json:"sellerStory"`
	Products           []*entity.Product `json:"products"`
}
