package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/ninokhhh/lunacase/internal/model"
	"github.com/ninokhhh/lunacase/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartHandler(t *testing.T) {
	db := setupTest(t)
	user, err := store.CreateUser(db, "Buyer", "buyer@example.com", "secret123")
	require.NoError(t, err)

	payload := map[string]interface{}{
		"img":   "case-blue.png",
		"title": "Blue Case",
		"price": 45,
	}

	c, rec := newContext(t, http.MethodPost, "/api/cart", payload, claimsFor(user))
	require.NoError(t, AddToCart(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var item model.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, 1, item.Quantity)

	// Second add merges instead of creating, answered with 200.
	c, rec = newContext(t, http.MethodPost, "/api/cart", payload, claimsFor(user))
	require.NoError(t, AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &item)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddToCartHandlerMissingProductData(t *testing.T) {
	db := setupTest(t)
	user, err := store.CreateUser(db, "Buyer", "buyer@example.com", "secret123")
	require.NoError(t, err)

	c, rec := newContext(t, http.MethodPost, "/api/cart", map[string]string{"title": "No Img"}, claimsFor(user))
	require.NoError(t, AddToCart(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	items, err := store.ListCartItems(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddToCartHandlerDefaultsPrice(t *testing.T) {
	db := setupTest(t)
	user, err := store.CreateUser(db, "Buyer", "buyer@example.com", "secret123")
	require.NoError(t, err)

	c, rec := newContext(t, http.MethodPost, "/api/cart", map[string]string{
		"img":   "case-red.png",
		"title": "Red Case",
	}, claimsFor(user))
	require.NoError(t, AddToCart(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var item model.CartItem
	decodeBody(t, rec, &item)
	assert.Equal(t, model.DefaultPrice, item.Price)
}

func TestGetCartHandlerTotal(t *testing.T) {
	db := setupTest(t)
	user, err := store.CreateUser(db, "Buyer", "buyer@example.com", "secret123")
	require.NoError(t, err)

	_, err = store.AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)
	_, err = store.AddCartItem(db, user.ID, "case-red.png", "Red Case", 30)
	require.NoError(t, err)

	c, rec := newContext(t, http.MethodGet, "/api/cart", nil, claimsFor(user))
	require.NoError(t, GetCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []model.CartItem `json:"items"`
		Total int              `json:"total"`
	}
	decodeBody(t, rec, &body)
	assert.Len(t, body.Items, 2)
	assert.Equal(t, 75, body.Total)
}

func TestCartItemActionsRejectForeignRows(t *testing.T) {
	db := setupTest(t)
	owner, err := store.CreateUser(db, "Owner", "owner@example.com", "secret123")
	require.NoError(t, err)
	intruder, err := store.CreateUser(db, "Intruder", "intruder@example.com", "secret123")
	require.NoError(t, err)

	item, err := store.AddCartItem(db, owner.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)
	id := strconv.FormatUint(uint64(item.ID), 10)

	c, rec := newContext(t, http.MethodPost, "/api/cart/"+id+"/increment", nil, claimsFor(intruder))
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, IncrementCartItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	c, rec = newContext(t, http.MethodDelete, "/api/cart/"+id, nil, claimsFor(intruder))
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, RemoveCartItem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
