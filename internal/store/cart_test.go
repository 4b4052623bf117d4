package store

import (
	"sync"
	"testing"

	"github.com/ninokhhh/lunacase/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCartItemMergesDuplicates(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")

	first, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Quantity)

	second, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "duplicate add must not create a second row")
}

func TestAddCartItemPriceFirstWriteWins(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")

	_, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)

	// Re-adding with a different price bumps quantity but keeps the price.
	item, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 99)
	require.NoError(t, err)
	assert.Equal(t, 45, item.Price)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddCartItemDefaultsPrice(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")

	item, err := AddCartItem(db, user.ID, "case-red.png", "Red Case", 0)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultPrice, item.Price)
}

func TestAddCartItemRequiresProductData(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")

	_, err := AddCartItem(db, user.ID, "", "Blue Case", 45)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = AddCartItem(db, user.ID, "case-blue.png", "   ", 45)
	assert.ErrorIs(t, err, ErrMissingFields)

	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestIncrementAndDecrementCartItem(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")

	item, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)

	require.NoError(t, IncrementCartItem(db, user.ID, item.ID))
	require.NoError(t, IncrementCartItem(db, user.ID, item.ID))

	var got model.CartItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 3, got.Quantity)

	require.NoError(t, DecrementCartItem(db, user.ID, item.ID))
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 2, got.Quantity)
}

func TestDecrementDeletesAtOne(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")

	item, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)

	require.NoError(t, DecrementCartItem(db, user.ID, item.ID))

	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("id = ?", item.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count, "a row must never persist with quantity <= 0")

	// The row is gone, so a further decrement reports not found.
	assert.ErrorIs(t, DecrementCartItem(db, user.ID, item.ID), ErrNotFound)
}

func TestCartOwnershipChecks(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db, "owner@example.com")
	intruder := testUser(t, db, "intruder@example.com")

	item, err := AddCartItem(db, owner.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)

	assert.ErrorIs(t, RemoveCartItem(db, intruder.ID, item.ID), ErrNotFound)
	assert.ErrorIs(t, IncrementCartItem(db, intruder.ID, item.ID), ErrNotFound)
	assert.ErrorIs(t, DecrementCartItem(db, intruder.ID, item.ID), ErrNotFound)

	// The owner's row is untouched by the rejected attempts.
	var got model.CartItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 1, got.Quantity)

	require.NoError(t, RemoveCartItem(db, owner.ID, item.ID))
}

func TestCartTotal(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")

	_, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)
	_, err = AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)
	_, err = AddCartItem(db, user.ID, "case-red.png", "Red Case", 30)
	require.NoError(t, err)

	total, err := CartTotal(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 45*2+30, total)

	items, err := ListCartItems(db, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "case-red.png", items[0].Img, "newest row first")
}

func TestClearCart(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")
	other := testUser(t, db, "other@example.com")

	_, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)
	_, err = AddCartItem(db, other.ID, "case-red.png", "Red Case", 30)
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, user.ID))

	items, err := ListCartItems(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = ListCartItems(db, other.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "clearing one cart must not touch another user's")
}

func TestConcurrentIncrementsAllApply(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db, "cart@example.com")

	item, err := AddCartItem(db, user.ID, "case-blue.png", "Blue Case", 45)
	require.NoError(t, err)

	const clicks = 10
	var wg sync.WaitGroup
	errs := make([]error, clicks)
	for i := 0; i < clicks; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = IncrementCartItem(db, user.ID, item.ID)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	var got model.CartItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, 1+clicks, got.Quantity, "every increment must durably apply")
}

func TestSumCartItemsClampsQuantity(t *testing.T) {
	items := []model.CartItem{
		{Price: 45, Quantity: 2},
		{Price: 30, Quantity: 0}, // treated as 1
		{Price: 0, Quantity: 5},  // missing price counts as 0
	}
	assert.Equal(t, 45*2+30, SumCartItems(items))
}
