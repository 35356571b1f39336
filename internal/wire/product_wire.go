package wire

import (
	"handcrafted-haven/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler) {
	r.Get("/api/products", productHandler.GetProducts)
	r.Post("/api/products", productHandler.CreateProduct)
	r.Get("/api/products/{id}", productHandler.GetProductByID)
	r.Post("/api/products/{id}/reviews", productHandler.AddReview)
}
