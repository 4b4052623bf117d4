package store

import (
	"strings"

	"github.com/ninokhhh/lunacase/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddWishlistItem saves a product for later. Re-adding a product the user
// already saved is an idempotent no-op (unlike the cart, which merges by
// incrementing quantity). The second return value reports whether a new row
// was created.
func AddWishlistItem(db *gorm.DB, userID uint, img, title string, price int) (*model.WishlistItem, bool, error) {
	img = strings.TrimSpace(img)
	title = strings.TrimSpace(title)
	if img == "" || title == "" {
		return nil, false, ErrMissingFields
	}
	if price <= 0 {
		price = model.DefaultPrice
	}

	item := model.WishlistItem{
		Img:    img,
		Title:  title,
		Price:  price,
		UserID: userID,
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "img"}},
		DoNothing: true,
	}).Create(&item)
	if result.Error != nil {
		return nil, false, result.Error
	}
	created := result.RowsAffected > 0

	var out model.WishlistItem
	if err := db.Where("user_id = ? AND img = ?", userID, img).First(&out).Error; err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

// RemoveWishlistItem deletes a wishlist row iff it belongs to the user.
func RemoveWishlistItem(db *gorm.DB, userID, itemID uint) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&model.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWishlistItems returns the user's saved products, newest first.
func ListWishlistItems(db *gorm.DB, userID uint) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
