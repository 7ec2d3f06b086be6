package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	catalogapp "github.com/shoppy/backend/internal/application/catalog"
	checkoutapp "github.com/shoppy/backend/internal/application/checkout"
	customerapp "github.com/shoppy/backend/internal/application/customer"
	identityapp "github.com/shoppy/backend/internal/application/identity"
	"github.com/shoppy/backend/internal/domain/catalog"
	"github.com/shoppy/backend/internal/domain/checkout"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/identity"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/infrastructure/auth"
	"github.com/shoppy/backend/internal/infrastructure/config"
	"github.com/shoppy/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// fakeProductRepository is an in-memory catalog.ProductRepository for tests
type fakeProductRepository struct {
	products map[uuid.UUID]*catalog.Product
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *fakeProductRepository) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepository) FindAll(_ context.Context) ([]*catalog.Product, error) {
	products := make([]*catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}

func (r *fakeProductRepository) Search(_ context.Context, query string) ([]*catalog.Product, error) {
	if query == "" {
		return r.FindAll(context.Background())
	}
	matches := make([]*catalog.Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (r *fakeProductRepository) Save(_ context.Context, p *catalog.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// fakeCustomerRepository is an in-memory customer.Repository for tests
type fakeCustomerRepository struct {
	customers map[uuid.UUID]*customer.Customer
}

func newFakeCustomerRepository() *fakeCustomerRepository {
	return &fakeCustomerRepository{customers: make(map[uuid.UUID]*customer.Customer)}
}

func (r *fakeCustomerRepository) FindByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	if c, ok := r.customers[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepository) FindByUsername(_ context.Context, username string) (*customer.Customer, error) {
	for _, c := range r.customers {
		if c.Username == username {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepository) FindOwnerOfOrder(_ context.Context, orderID uuid.UUID) (*customer.Customer, error) {
	for _, c := range r.customers {
		for _, order := range c.Orders {
			if order.ID == orderID {
				return c, nil
			}
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCustomerRepository) FindAll(_ context.Context) ([]*customer.Customer, error) {
	all := make([]*customer.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		all = append(all, c)
	}
	return all, nil
}

func (r *fakeCustomerRepository) Save(_ context.Context, c *customer.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.customers[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

// fakeCheckoutRepository is an in-memory checkout.Repository for tests
type fakeCheckoutRepository struct {
	checkouts map[uuid.UUID]*checkout.Checkout
}

func newFakeCheckoutRepository() *fakeCheckoutRepository {
	return &fakeCheckoutRepository{checkouts: make(map[uuid.UUID]*checkout.Checkout)}
}

func (r *fakeCheckoutRepository) FindByCustomer(_ context.Context, customerID uuid.UUID) (*checkout.Checkout, error) {
	for _, chk := range r.checkouts {
		if chk.CustomerID == customerID {
			return chk, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCheckoutRepository) FindByID(_ context.Context, id uuid.UUID) (*checkout.Checkout, error) {
	if chk, ok := r.checkouts[id]; ok {
		return chk, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCheckoutRepository) Save(_ context.Context, chk *checkout.Checkout) error {
	r.checkouts[chk.ID] = chk
	return nil
}

func (r *fakeCheckoutRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.checkouts[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.checkouts, id)
	return nil
}

// fakeUserRepository is an in-memory identity.UserRepository for tests
type fakeUserRepository struct {
	users map[uuid.UUID]*identity.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[uuid.UUID]*identity.User)}
}

func (r *fakeUserRepository) FindByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepository) FindByUsername(_ context.Context, username string) (*identity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepository) Save(_ context.Context, u *identity.User) error {
	r.users[u.ID] = u
	return nil
}

// testRig wires real application services over in-memory repositories
// behind a gin engine, with JWT claims injected per request.
type testRig struct {
	engine    *gin.Engine
	api       *gin.RouterGroup
	products  *fakeProductRepository
	customers *fakeCustomerRepository
	checkouts *fakeCheckoutRepository
	users     *fakeUserRepository

	productService  *catalogapp.ProductService
	customerService *customerapp.CustomerService
	checkoutService *checkoutapp.Service
	authService     *identityapp.AuthService
	jwtService      *auth.JWTService
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		RefreshSecret:          "test-refresh-secret-32-chars-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	}
}

// asUser injects claims the way the JWT middleware would after a
// successful token validation.
func asUser(username string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &auth.Claims{
			UserID:     uuid.NewString(),
			Username:   username,
			Email:      username + "@example.com",
			GivenName:  "John",
			FamilyName: "Doe",
			Roles:      roles,
			TokenType:  auth.TokenTypeAccess,
		}
		c.Set(middleware.JWTClaimsKey, claims)
		c.Set(middleware.JWTUserIDKey, claims.UserID)
		c.Set(middleware.JWTUsernameKey, claims.Username)
		c.Set(middleware.JWTRolesKey, claims.Roles)
		c.Next()
	}
}

func newTestRig(t *testing.T, authMiddleware ...gin.HandlerFunc) *testRig {
	t.Helper()

	products := newFakeProductRepository()
	customers := newFakeCustomerRepository()
	checkouts := newFakeCheckoutRepository()
	users := newFakeUserRepository()

	log := zap.NewNop()
	jwtService := auth.NewJWTService(testJWTConfig())
	blacklist := auth.NewInMemoryTokenBlacklist()

	customerService := customerapp.NewCustomerService(customers, log)

	rig := &testRig{
		products:        products,
		customers:       customers,
		checkouts:       checkouts,
		users:           users,
		productService:  catalogapp.NewProductService(products),
		customerService: customerService,
		checkoutService: checkoutapp.NewService(checkouts, customers, products, customerService, log),
		authService:     identityapp.NewAuthService(users, jwtService, blacklist, log),
		jwtService:      jwtService,
	}

	rig.engine = gin.New()
	api := rig.engine.Group("/api/v1")
	if len(authMiddleware) > 0 {
		api.Use(authMiddleware...)
	}
	rig.api = api
	return rig
}

func (rig *testRig) addProduct(t *testing.T, name string, price string, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, name+" description", decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	require.NoError(t, rig.products.Save(context.Background(), p))
	return p
}

func (rig *testRig) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rig.engine.ServeHTTP(w, req)
	return w
}

// envelope mirrors the JSON response wrapper for decoding in tests
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	env := decodeEnvelope(t, w)
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func requireErrorMessage(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	require.Equal(t, message, env.Error.Message)
}
