package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"handcrafted-haven/internal/data/entity"
	"handcrafted-haven/internal/data/filestore"
	"handcrafted-haven/internal/usecase"
	"handcrafted-haven/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	logger := zap.NewNop()
	config := &utils.Config{
		App:       utils.AppConfig{Name: "handcrafted-haven", Port: "8080"},
		Store:     utils.StoreConfig{Backend: utils.BackendFile, DataDir: t.TempDir()},
		RateLimit: utils.RateLimitConfig{RPS: 100, Burst: 200},
	}

	repo := filestore.NewRepository(config.Store.DataDir, logger)
	service := usecase.NewService(repo, nil, config, logger)

	return Wiring(service, config, logger)
}

func doRequest(t *testing.T, app *App, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestProducts_FilterByCategoryAndPrice(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodGet, "/api/products?category=pottery&minPrice=60&maxPrice=70", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Hand-Thrown Ceramic Bowl", products[0].Name)
	assert.Equal(t, float64(65), products[0].Price)
}

func TestProducts_FilterMatchesNothing(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodGet, "/api/products?category=jewelry", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Empty(t, products)
}

func TestProducts_BadPriceParam(t *testing.T) {
	app := newTestApp(t)

	rec, _ := doRequest(t, app, http.MethodGet, "/api/products?minPrice=cheap", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodPost, "/api/auth/register", `{
		"firstName": "Maya",
		"lastName": "Stone",
		"email": "maya@stoneware.com",
		"password": "Password123!",
		"accountType": "artisan",
		"businessName": "Stoneware Studio"
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Status)

	rec, env = doRequest(t, app, http.MethodPost, "/api/auth/login", `{
		"email": "maya@stoneware.com",
		"password": "Password123!"
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var user struct {
		Email       string `json:"email"`
		AccountType string `json:"accountType"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "maya@stoneware.com", user.Email)
	assert.Equal(t, "artisan", user.AccountType)
}

func TestAuth_DuplicateEmailConflicts(t *testing.T) {
	app := newTestApp(t)

	body := `{
		"firstName": "Demo",
		"lastName": "Buyer",
		"email": "buyer.demo@handcraftedhaven.test",
		"password": "Password123!",
		"accountType": "buyer"
	}`

	rec, env := doRequest(t, app, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "An account with this email already exists.", env.Message)
}

func TestAuth_WrongPasswordUnauthorized(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodPost, "/api/auth/login", `{
		"email": "buyer.demo@handcraftedhaven.test",
		"password": "not-the-password"
	}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password.", env.Message)
}

func TestProducts_CreateRequiresArtisan(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodPost, "/api/products", `{
		"sellerEmail": "buyer.demo@handcraftedhaven.test",
		"name": "Forbidden Vase",
		"description": "Should never be listed.",
		"category": "pottery",
		"price": 30
	}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Only authenticated artisan accounts can create product listings.", env.Message)
}

func TestProducts_CreateAndFetch(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodPost, "/api/products", `{
		"sellerEmail": "artisan.demo@handcraftedhaven.test",
		"name": "Woven Wall Hanging",
		"description": "Hand-woven from natural fibers.",
		"category": "textiles",
		"price": 120
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "Demo Artisan", created.SellerName)

	rec, env = doRequest(t, app, http.MethodGet, "/api/products/3", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, "Woven Wall Hanging", fetched.Name)
}

func TestProducts_GetMissingProduct(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodGet, "/api/products/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found.", env.Message)
}

func TestReviews_UnregisteredReviewerForbidden(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodPost, "/api/products/2/reviews", `{
		"reviewerEmail": "stranger@example.com",
		"rating": 5,
		"review": "Should not persist."
	}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Only registered users can leave reviews.", env.Message)

	// Nothing was persisted for the rejected reviewer.
	rec, env = doRequest(t, app, http.MethodGet, "/api/products/2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var bowl entity.Product
	require.NoError(t, json.Unmarshal(env.Data, &bowl))
	assert.Empty(t, bowl.Reviews)
}

func TestReviews_RegisteredBuyerCanReview(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodPost, "/api/products/2/reviews", `{
		"reviewerEmail": "buyer.demo@handcraftedhaven.test",
		"rating": 4,
		"review": "Great bowl for everyday use."
	}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var review entity.Review
	require.NoError(t, json.Unmarshal(env.Data, &review))
	assert.Equal(t, int64(1), review.ID)
	assert.Equal(t, "Demo Buyer", review.ReviewerName)
}

func TestReviews_RatingOutOfRange(t *testing.T) {
	app := newTestApp(t)

	rec, _ := doRequest(t, app, http.MethodPost, "/api/products/2/reviews", `{
		"reviewerEmail": "buyer.demo@handcraftedhaven.test",
		"rating": 6,
		"review": "Too enthusiastic."
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSellers_ProfileAndStoryUpdate(t *testing.T) {
	app := newTestApp(t)

	rec, env := doRequest(t, app, http.MethodGet, "/api/sellers/sarah@crafts.com", "")
	require.Equal(t, http.StatusNotFound, rec.Code, "seeded product sellers have no accounts")
	assert.Equal(t, "Seller not found.", env.Message)

	rec, env = doRequest(t, app, http.MethodGet, "/api/sellers/artisan.demo@handcraftedhaven.test", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		SellerEmail string `json:"sellerEmail"`
		SellerStory string `json:"sellerStory"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "artisan.demo@handcraftedhaven.test", profile.SellerEmail)

	rec, env = doRequest(t, app, http.MethodPatch, "/api/sellers/artisan.demo@handcraftedhaven.test", `{
		"requesterEmail": "buyer.demo@handcraftedhaven.test",
		"story": "Trying to edit another profile."
	}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You can only update your own seller profile.", env.Message)

	rec, _ = doRequest(t, app, http.MethodPatch, "/api/sellers/artisan.demo@handcraftedhaven.test", `{
		"requesterEmail": "artisan.demo@handcraftedhaven.test",
		"story": "A story for every shelf."
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth_FileBackendWithoutDatabase(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health/db", nil)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var probe struct {
		OK     bool   `json:"ok"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &probe))
	assert.False(t, probe.OK)
	assert.Equal(t, "missing_env", probe.Status)
}
