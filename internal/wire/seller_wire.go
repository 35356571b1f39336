package wire

import (
	"handcrafted-haven/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeller(r chi.Router, sellerHandler *adaptor.SellerHandler) {
	r.Get("/api/sellers/{email}", sellerHandler.GetProfile)
	r.Patch("/api/sellers/{email}", sellerHandler.UpdateStory)
}
