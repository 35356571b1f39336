package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const pgForeignKeyViolation = "23503"

type catalogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCatalogRepository(db database.PgxIface, log *zap.Logger) CatalogStore {
	return &catalogRepository{
		db:  db,
		log: log.With(zap.String("repository", "catalog")),
	}
}

const productColumns = `id, seller_email, seller_name, seller_business_name,
	       seller_story, name, description, category, price, image_url, created_at`

func (cr *catalogRepository) ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any

	if filter.Category != "" {
		args = append(args, strings.ToLower(filter.Category))
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}

	query += " ORDER BY id"

	products, err := cr.queryProducts(ctx, query, args...)
	if err != nil {
		cr.log.Error("Failed to list products", zap.Error(err), zap.String("category", filter.Category))
		return nil, fmt.Errorf("list products: %w", err)
	}

	if err := cr.attachReviews(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (cr *catalogRepository) GetProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product entity.Product
	err := cr.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.SellerEmail,
		&product.SellerName,
		&product.SellerBusinessName,
		&product.SellerStory,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.Price,
		&product.ImageURL,
		&product.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	if err := cr.attachReviews(ctx, []*entity.Product{&product}); err != nil {
		return nil, err
	}

	return &product, nil
}

func (cr *catalogRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (seller_email, seller_name, seller_business_name,
		                      seller_story, name, description, category, price,
		                      image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := cr.db.QueryRow(ctx, query,
		product.SellerEmail,
		product.SellerName,
		product.SellerBusinessName,
		product.SellerStory,
		product.Name,
		product.Description,
		product.Category,
		product.Price,
		product.ImageURL,
		product.CreatedAt,
	).Scan(&product.ID)

	if err != nil {
		cr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("seller_email", product.SellerEmail),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %q for %s: %w", product.Name, product.SellerEmail, err)
	}

	product.Reviews = []entity.Review{}
	return nil
}

// AddReview relies on the product foreign key: a violation means the product
// does not exist and nothing is persisted.
func (cr *catalogRepository) AddReview(ctx context.Context, productID int64, review *entity.Review) error {
	query := `
		INSERT INTO reviews (product_id, reviewer_email, reviewer_name, rating, review, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := cr.db.QueryRow(ctx, query,
		productID,
		review.ReviewerEmail,
		review.ReviewerName,
		review.Rating,
		review.Review,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrNotFound
		}

		cr.log.Error("Failed to add review",
			zap.Error(err),
			zap.Int64("product_id", productID),
			zap.String("reviewer_email", review.ReviewerEmail),
		)
		return fmt.Errorf("add review to product %d: %w", productID, err)
	}

	review.ProductID = productID
	return nil
}

func (cr *catalogRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE seller_email = $1 ORDER BY id`

	products, err := cr.queryProducts(ctx, query, sellerEmail)
	if err != nil {
		cr.log.Error("Failed to list products by seller",
			zap.Error(err),
			zap.String("seller_email", sellerEmail),
		)
		return nil, fmt.Errorf("list products by seller %s: %w", sellerEmail, err)
	}

	if err := cr.attachReviews(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

// UpdateSellerStory rewrites the denormalized story on every product owned by
// the seller.
func (cr *catalogRepository) UpdateSellerStory(ctx context.Context, sellerEmail, story string) (bool, error) {
	query := `UPDATE products SET seller_story = $2 WHERE seller_email = $1`

	result, err := cr.db.Exec(ctx, query, sellerEmail, story)
	if err != nil {
		cr.log.Error("Failed to update seller story",
			zap.Error(err),
			zap.String("seller_email", sellerEmail),
		)
		return false, fmt.Errorf("update seller story for %s: %w", sellerEmail, err)
	}

	return result.RowsAffected() > 0, nil
}

func (cr *catalogRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := cr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*entity.Product{}
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.SellerEmail,
			&product.SellerName,
			&product.SellerBusinessName,
			&product.SellerStory,
			&product.Name,
			&product.Description,
			&product.Category,
			&product.Price,
			&product.ImageURL,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		product.Reviews = []entity.Review{}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

// attachReviews loads reviews for the given products in one query, newest
// first.
func (cr *catalogRepository) attachReviews(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}

	byID := make(map[int64]*entity.Product, len(products))
	ids := make([]int64, 0, len(products))
	for _, product := range products {
		byID[product.ID] = product
		ids = append(ids, product.ID)
	}

	query := `
		SELECT id, product_id, reviewer_email, reviewer_name, rating, review, created_at
		FROM reviews
		WHERE product_id = ANY($1)
		ORDER BY created_at DESC, id DESC
	`

	rows, err := cr.db.Query(ctx, query, ids)
	if err != nil {
		cr.log.Error("Failed to load reviews", zap.Error(err))
		return fmt.Errorf("load reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.ReviewerEmail,
			&review.ReviewerName,
			&review.Rating,
			&review.Review,
			&review.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("scan review row: %w", err)
		}

		if product, ok := byID[review.ProductID]; ok {
			product.Reviews = append(product.Reviews, review)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate review rows: %w", err)
	}

	return nil
}
