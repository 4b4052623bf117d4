package store

import (
	"strings"

	"github.com/ninokhhh/lunacase/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddCartItem adds a product to the user's cart. If the product is already
// there the row's quantity is incremented by one; the stored price is not
// touched, so the price seen at first add wins. A non-positive price falls
// back to model.DefaultPrice.
//
// The upsert is a single statement against the (user_id, img) unique index,
// so two concurrent adds of the same product merge into one row.
func AddCartItem(db *gorm.DB, userID uint, img, title string, price int) (*model.CartItem, error) {
	img = strings.TrimSpace(img)
	title = strings.TrimSpace(title)
	if img == "" || title == "" {
		return nil, ErrMissingFields
	}
	if price <= 0 {
		price = model.DefaultPrice
	}

	item := model.CartItem{
		Img:      img,
		Title:    title,
		Price:    price,
		Quantity: 1,
		UserID:   userID,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "img"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + 1"),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the merged quantity, not the insert struct.
	var out model.CartItem
	if err := db.Where("user_id = ? AND img = ?", userID, img).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveCartItem deletes a cart row iff it belongs to the user.
func RemoveCartItem(db *gorm.DB, userID, itemID uint) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&model.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementCartItem raises the row's quantity by one. The adjustment is a
// single UPDATE with the quantity arithmetic done in the database, so rapid
// concurrent clicks each apply.
func IncrementCartItem(db *gorm.DB, userID, itemID uint) error {
	result := db.Model(&model.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", gorm.Expr("quantity + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementCartItem lowers the row's quantity by one and deletes the row if
// the result would be zero or negative; a non-positive quantity is never
// persisted.
func DecrementCartItem(db *gorm.DB, userID, itemID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CartItem{}).
			Where("id = ? AND user_id = ?", itemID, userID).
			Update("quantity", gorm.Expr("quantity - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ? AND quantity <= 0", itemID).
			Delete(&model.CartItem{}).Error
	})
}

// ListCartItems returns the user's cart rows, newest first.
func ListCartItems(db *gorm.DB, userID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CartTotal computes the sum of price*quantity over the user's cart rows.
// A missing price counts as zero; a quantity below one counts as one.
func CartTotal(db *gorm.DB, userID uint) (int, error) {
	items, err := ListCartItems(db, userID)
	if err != nil {
		return 0, err
	}
	return SumCartItems(items), nil
}

// ClearCart deletes every cart row for the user.
func ClearCart(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}

// SumCartItems computes price*quantity over already-loaded cart rows.
func SumCartItems(items []model.CartItem) int {
	total := 0
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		total += it.Price * qty
	}
	return total
}
