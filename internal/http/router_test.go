package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/auth"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/order"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/product"
	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/user"
)

// In-memory fakes backing the router tests. They behave like the real
// repositories so create-then-read flows work end to end.

type memoryUsers struct {
	users []*user.User
}

func (m *memoryUsers) Create(ctx context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, u)
	return nil
}

func (m *memoryUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (m *memoryUsers) GetByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range m.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

type memoryOrders struct {
	users  *memoryUsers
	orders []order.Order

	listCalls []string
}

func (m *memoryOrders) Create(ctx context.Context, o *order.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	o.CreatedAt = now
	o.UpdatedAt = now
	m.orders = append(m.orders, *o)
	return nil
}

func (m *memoryOrders) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID.Hex() == orderID {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, order.ErrNotFound
}

func (m *memoryOrders) GetByIDWithOwner(ctx context.Context, orderID string) (*order.WithOwner, error) {
	o, err := m.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := order.WithOwner{Order: *o}
	if u, err := m.users.GetByID(ctx, o.UserID.Hex()); err == nil {
		out.Owner = order.OwnerSummary{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return &out, nil
}

func (m *memoryOrders) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	m.listCalls = append(m.listCalls, userID)
	out := []order.Order{}
	for _, o := range m.orders {
		if o.UserID.Hex() == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type memoryProducts struct {
	products []product.Product
}

func (m *memoryProducts) List(ctx context.Context) ([]product.Product, error) {
	out := []product.Product{}
	out = append(out, m.products...)
	return out, nil
}

func (m *memoryProducts) GetByID(ctx context.Context, id string) (*product.Product, error) {
	for i := range m.products {
		if m.products[i].ID.Hex() == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, product.ErrNotFound
}

type testEnv struct {
	router   http.Handler
	users    *memoryUsers
	orders   *memoryOrders
	products *memoryProducts
	tokens   *auth.TokenIssuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithUploadDir(t, t.TempDir())
}

func newTestEnvWithUploadDir(t *testing.T, uploadDir string) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := &memoryUsers{}
	orders := &memoryOrders{users: users}
	products := &memoryProducts{}
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)

	router := NewRouter(RouterConfig{
		Orders:           order.NewService(orders, nil, logger),
		Users:            users,
		Products:         products,
		Tokens:           tokens,
		UploadDir:        uploadDir,
		Logger:           logger,
		CORSAllowOrigins: []string{"*"},
	})

	return &testEnv{
		router:   router,
		users:    users,
		orders:   orders,
		products: products,
		tokens:   tokens,
	}
}

// addUser registers an account and returns it with a valid bearer token.
func (e *testEnv) addUser(t *testing.T, name, email, password string) (*user.User, string) {
	t.Helper()

	u := &user.User{Name: name, Email: email}
	require.NoError(t, u.SetPassword(password))
	require.NoError(t, e.users.Create(context.Background(), u))

	token, err := e.tokens.Sign(u.ID.Hex())
	require.NoError(t, err)
	return u, token
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}
