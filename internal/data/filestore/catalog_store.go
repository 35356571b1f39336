package filestore

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/repository"

	"go.uber.org/zap"
)

type marketplaceDocument struct {
	Products []*entity.Product `json:"products"`
}

type catalogStore struct {
	mu   sync.Mutex
	path string
	log  *zap.Logger
}

func NewCatalogStore(dataDir string, log *zap.Logger) repository.CatalogStore {
	return &catalogStore{
		path: filepath.Join(dataDir, marketplaceFile),
		log:  log.With(zap.String("store", "catalog-file")),
	}
}

func (cs *catalogStore) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	doc, err := cs.load()
	if err != nil {
		cs.log.Error("Failed to load marketplace document", zap.Error(err))
		return nil, err
	}

	category := strings.ToLower(filter.Category)
	matched := []*entity.Product{}
	for _, product := range doc.Products {
		if category != "" && strings.ToLower(product.Category) != category {
			continue
		}
		if filter.MinPrice != nil && product.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && product.Price > *filter.MaxPrice {
			continue
		}
		matched = append(matched, product)
	}

	return matched, nil
}

func (cs *catalogStore) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	doc, err := cs.load()
	if err != nil {
		cs.log.Error("Failed to load marketplace document", zap.Error(err))
		return nil, err
	}

	return findProduct(doc, id), nil
}

func (cs *catalogStore) CreateProduct(ctx context.Context, product *entity.Product) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	doc, err := cs.load()
	if err != nil {
		cs.log.Error("Failed to load marketplace document", zap.Error(err))
		return err
	}

	product.ID = nextProductID(doc.Products)
	if product.Reviews == nil {
		product.Reviews = []entity.Review{}
	}
	doc.Products = append(doc.Products, product)

	if err := writeDocument(cs.path, doc); err != nil {
		cs.log.Error("Failed to persist marketplace document",
			zap.Error(err),
			zap.String("seller_email", product.SellerEmail),
		)
		return err
	}

	return nil
}

// AddReview appends to the product's embedded review list. Review ids are
// scoped per product in this backend (max existing + 1).
func (cs *catalogStore) AddReview(ctx context.Context, productID int64, review *entity.Review) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	doc, err := cs.load()
	if err != nil {
		cs.log.Error("Failed to load marketplace document", zap.Error(err))
		return err
	}

	product := findProduct(doc, productID)
	if product == nil {
		return repository.ErrNotFound
	}

	var maxID int64
	for _, existing := range product.Reviews {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	review.ID = maxID + 1
	review.ProductID = productID
	product.Reviews = append(product.Reviews, *review)
	sortReviews(product)

	if err := writeDocument(cs.path, doc); err != nil {
		cs.log.Error("Failed to persist marketplace document",
			zap.Error(err),
			zap.Int64("product_id", productID),
		)
		return err
	}

	return nil
}

func (cs *catalogStore) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	doc, err := cs.load()
	if err != nil {
		cs.log.Error("Failed to load marketplace document", zap.Error(err))
		return nil, err
	}

	matched := []*entity.Product{}
	for _, product := range doc.Products {
		if product.SellerEmail == sellerEmail {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

func (cs *catalogStore) UpdateSellerStory(ctx context.Context, sellerEmail, story string) (bool, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	doc, err := cs.load()
	if err != nil {
		cs.log.Error("Failed to load marketplace document", zap.Error(err))
		return false, err
	}

	updated := false
	for _, product := range doc.Products {
		if product.SellerEmail == sellerEmail {
			s := story
			product.SellerStory = &s
			updated = true
		}
	}

	if !updated {
		return false, nil
	}

	if err := writeDocument(cs.path, doc); err != nil {
		cs.log.Error("Failed to persist marketplace document",
			zap.Error(err),
			zap.String("seller_email", sellerEmail),
		)
		return false, err
	}

	return true, nil
}

func (cs *catalogStore) load() (*marketplaceDocument, error) {
	doc := &marketplaceDocument{}
	if err := readDocument(cs.path, doc, seedMarketplace); err != nil {
		return nil, err
	}
	if doc.Products == nil {
		doc.Products = []*entity.Product{}
	}
	for _, product := range doc.Products {
		if product.Reviews == nil {
			product.Reviews = []entity.Review{}
		}
		sortReviews(product)
	}
	return doc, nil
}

func findProduct(doc *marketplaceDocument, id int64) *entity.Product {
	for _, product := range doc.Products {
		if product.ID == id {
			return product
		}
	}
	return nil
}

func nextProductID(products []*entity.Product) int64 {
	var maxID int64
	for _, product := range products {
		if product.ID > maxID {
			maxID = product.ID
		}
	}
	return maxID + 1
}

// sortReviews orders newest first.
func sortReviews(product *entity.Product) {
	sort.SliceStable(product.Reviews, func(i, j int) bool {
		return product.Reviews[i].CreatedAt.After(product.Reviews[j].CreatedAt)
	})
}

// seedMarketplace builds the two demonstration products so the storefront is
// never empty on a fresh deployment.
func seedMarketplace() ([]byte, error) {
	now := time.Now().UTC()

	sarahBusiness := "Sarah Crafts"
	sarahStory := "I am a leatherworker who creates durable, timeless bags inspired by family traditions."
	bagImage := "👜"

	clayBusiness := "Clay Studio"
	clayStory := "We hand-throw small-batch ceramics that blend modern design with timeless utility."
	bowlImage := "🏺"

	doc := marketplaceDocument{Products: []*entity.Product{
		{
			ID:                 1,
			SellerEmail:        "sarah@crafts.com",
			SellerName:         "Sarah Crafts",
			SellerBusinessName: &sarahBusiness,
			SellerStory:        &sarahStory,
			Name:               "Artisan Leather Bag",
			Description:        "Handcrafted with premium leather using traditional techniques. Each piece is unique.",
			Category:           "accessories",
			Price:              89,
			ImageURL:           &bagImage,
			CreatedAt:          now,
			Reviews: []entity.Review{
				{
					ID:            1,
					ProductID:     1,
					ReviewerEmail: "emma@example.com",
					ReviewerName:  "Emma",
					Rating:        5,
					Review:        "Beautiful craftsmanship and very sturdy!",
					CreatedAt:     now,
				},
			},
		},
		{
			ID:                 2,
			SellerEmail:        "clay@studio.com",
			SellerName:         "Clay Studio",
			SellerBusinessName: &clayBusiness,
			SellerStory:        &clayStory,
			Name:               "Hand-Thrown Ceramic Bowl",
			Description:        "Food-safe ceramic bowl, perfect for soups, salads, and display.",
			Category:           "pottery",
			Price:              65,
			ImageURL:           &bowlImage,
			CreatedAt:          now,
			Reviews:            []entity.Review{},
		},
	}}

	return json.MarshalIndent(doc, "", "  ")
}
