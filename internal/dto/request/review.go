package request

type CreateReviewRequest struct {
	ReviewerEmail string `json:"reviewerEmail" validate:"required,email"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Review        string `json:"review" validate:"required,max=2000"`
}
