package store

import (
	"errors"
	"strings"

	"github.com/ninokhhh/lunacase/internal/model"
	"gorm.io/gorm"
)

// ShippingInfo carries the checkout form fields. All four are required.
type ShippingInfo struct {
	PhoneModel  string `json:"phone_model" form:"phone_model"`
	Address     string `json:"address" form:"address"`
	City        string `json:"city" form:"city"`
	PhoneNumber string `json:"phone_number" form:"phone_number"`
}

func (s *ShippingInfo) trim() {
	s.PhoneModel = strings.TrimSpace(s.PhoneModel)
	s.Address = strings.TrimSpace(s.Address)
	s.City = strings.TrimSpace(s.City)
	s.PhoneNumber = strings.TrimSpace(s.PhoneNumber)
}

func (s *ShippingInfo) complete() bool {
	return s.PhoneModel != "" && s.Address != "" && s.City != "" && s.PhoneNumber != ""
}

// Checkout converts the user's cart into a permanent order.
//
// The total is computed from the cart rows at submission time, not from any
// value remembered at add time. The order insert, the line-item snapshots and
// the cart wipe run in one transaction: a failure anywhere leaves the cart
// untouched and creates no order.
func Checkout(db *gorm.DB, userID uint, info ShippingInfo) (*model.Order, error) {
	info.trim()
	if !info.complete() {
		return nil, ErrMissingFields
	}

	var order model.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []model.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		orderItems := make([]model.OrderItem, 0, len(items))
		for _, it := range items {
			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			orderItems = append(orderItems, model.OrderItem{
				Img:      it.Img,
				Title:    it.Title,
				Price:    it.Price,
				Quantity: qty,
			})
		}

		order = model.Order{
			PhoneModel:  info.PhoneModel,
			Address:     info.Address,
			City:        info.City,
			PhoneNumber: info.PhoneNumber,
			Total:       SumCartItems(items),
			UserID:      userID,
			Items:       orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder returns one of the user's orders with its line items. Orders that
// belong to someone else are reported as not found.
func GetOrder(db *gorm.DB, userID, orderID uint) (*model.Order, error) {
	var order model.Order
	err := db.Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListUserOrders returns the user's order history, newest first.
func ListUserOrders(db *gorm.DB, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := db.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllOrders returns every order, newest first, with line items and the
// owning user attached. Read-only; used by the admin view.
func ListAllOrders(db *gorm.DB) ([]model.Order, error) {
	var orders []model.Order
	err := db.Preload("Items").
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
