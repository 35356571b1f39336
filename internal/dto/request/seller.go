package request

type UpdateSellerStoryRequest struct {
	RequesterEmail string `json:"requesterEmail" validate:"required,email"`
	Story          string `json:"story" validate:"required,max=2000"`
}
