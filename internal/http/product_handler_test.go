package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tonni59/TONNIShop-FullStack-Server-Side/internal/product"
)

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)
	env.products.products = []product.Product{
		{ID: primitive.NewObjectID(), Name: "Shoe", Price: 59.95, CountInStock: 3},
		{ID: primitive.NewObjectID(), Name: "Hat", Price: 19.95, CountInStock: 0},
	}

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Shoe", resp[0].Name)
}

func TestGetProduct_Success(t *testing.T) {
	env := newTestEnv(t)
	p := product.Product{ID: primitive.NewObjectID(), Name: "Shoe", Price: 59.95}
	env.products.products = []product.Product{p}

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/products/"+p.ID.Hex(), nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, p.ID, resp.ID)
	assert.Equal(t, "Shoe", resp.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(httptest.NewRequest(http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil))

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "product not found", resp["message"])
}
