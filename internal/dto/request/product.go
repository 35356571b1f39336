package request

type CreateProductRequest struct {
	SellerEmail string  `json:"sellerEmail" validate:"required,email"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=2000"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
}
