package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahil-jamadar/new-couture-project/cart"
	"github.com/sahil-jamadar/new-couture-project/middlewares"
	"github.com/sahil-jamadar/new-couture-project/storage"
)

func newCartTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cc := NewCartController(cart.NewStore(storage.NewMemory()))

	server := gin.New()
	server.GET("/cart/:cartId", cc.GetCart)
	server.POST("/cart/:cartId/items", cc.AddCartItem)
	server.PATCH("/cart/:cartId/items/:itemId", cc.UpdateCartItem)
	server.DELETE("/cart/:cartId/items/:itemId", cc.RemoveCartItem)
	server.DELETE("/cart/:cartId", cc.ClearCart)
	server.GET("/cart/:cartId/summary", cc.GetCartSummary)
	server.GET("/cart/:cartId/count", cc.GetCartCount)
	server.POST("/cart/:cartId/checkout", middlewares.RequireSession(), cc.Checkout)
	return server
}

func doJSON(t *testing.T, server *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	var decoded map[string]any
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

const addItemBody = `{"id": "cotton-2", "name": "Denis Art White Edition", "price": 2499, "quantity": 1}`

func TestAddCartItemThenMerge(t *testing.T) {
	server := newCartTestRouter()

	recorder, body := doJSON(t, server, http.MethodPost, "/cart/u1/items", addItemBody)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, body["message"], "has been added to your cart")

	recorder, body = doJSON(t, server, http.MethodPost, "/cart/u1/items", addItemBody)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body["message"], "quantity updated")

	recorder, body = doJSON(t, server, http.MethodGet, "/cart/u1", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(2), item["quantity"])
}

func TestAddCartItemValidation(t *testing.T) {
	server := newCartTestRouter()

	recorder, _ := doJSON(t, server, http.MethodPost, "/cart/u1/items", `{"name": "No ID", "price": 10}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder, body := doJSON(t, server, http.MethodPost, "/cart/u1/items",
		`{"id": "a", "name": "A", "price": 10, "quantity": -1}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Quantity must be at least 1", body["message"])
}

func TestUpdateCartItemQuantity(t *testing.T) {
	server := newCartTestRouter()
	doJSON(t, server, http.MethodPost, "/cart/u1/items", addItemBody)

	recorder, _ := doJSON(t, server, http.MethodPatch, "/cart/u1/items/cotton-2", `{"quantity": 4}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder, body := doJSON(t, server, http.MethodGet, "/cart/u1/count", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, float64(4), body["count"])

	recorder, body = doJSON(t, server, http.MethodPatch, "/cart/u1/items/cotton-2", `{"quantity": 0}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Quantity must be at least 1", body["message"])

	recorder, _ = doJSON(t, server, http.MethodPatch, "/cart/u1/items/missing", `{"quantity": 2}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRemoveCartItem(t *testing.T) {
	server := newCartTestRouter()
	doJSON(t, server, http.MethodPost, "/cart/u1/items", addItemBody)

	recorder, body := doJSON(t, server, http.MethodDelete, "/cart/u1/items/cotton-2", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Item has been removed from your cart", body["message"])

	recorder, _ = doJSON(t, server, http.MethodDelete, "/cart/u1/items/cotton-2", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestClearCartEndpoint(t *testing.T) {
	server := newCartTestRouter()
	doJSON(t, server, http.MethodPost, "/cart/u1/items", addItemBody)

	recorder, _ := doJSON(t, server, http.MethodDelete, "/cart/u1", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder, body := doJSON(t, server, http.MethodGet, "/cart/u1", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, body["items"])
}

func TestGetCartSummaryEndpoint(t *testing.T) {
	server := newCartTestRouter()
	doJSON(t, server, http.MethodPost, "/cart/u1/items", addItemBody)
	doJSON(t, server, http.MethodPost, "/cart/u1/items", addItemBody)

	recorder, body := doJSON(t, server, http.MethodGet, "/cart/u1/summary", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	summary := body["summary"].(map[string]any)
	assert.Equal(t, float64(4998), summary["subtotal"])
	assert.InDelta(t, 4998*cart.TaxRate, summary["tax"], 1e-9)
	assert.InDelta(t, 4998*(1+cart.TaxRate), summary["total"], 1e-9)
}

func TestCheckoutRequiresSession(t *testing.T) {
	server := newCartTestRouter()
	doJSON(t, server, http.MethodPost, "/cart/u1/items", addItemBody)

	recorder, body := doJSON(t, server, http.MethodPost, "/cart/u1/checkout", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, body["message"], "Please login to your account")
}
