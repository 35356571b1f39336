package request

type RegisterRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=100"`
	LastName     string `json:"lastName" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	AccountType  string `json:"accountType" validate:"required,oneof=buyer artisan"`
	BusinessName string `json:"businessName,omitempty" validate:"omitempty,max=200"`
	Bio          string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
