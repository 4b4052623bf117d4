package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ninokhhh/lunacase/internal/store"
	"github.com/ninokhhh/lunacase/pkg/database"
	"github.com/ninokhhh/lunacase/pkg/logger"
	"github.com/ninokhhh/lunacase/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductRequest defines the payload for cart and wishlist adds. Price is
// optional; anything absent or non-positive falls back to the default.
type ProductRequest struct {
	Img   string `json:"img" form:"img"`
	Title string `json:"title" form:"title"`
	Price int    `json:"price" form:"price"`
}

// GetCart returns the user's cart items and running total
func GetCart(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	db := database.GetDB()
	items, err := store.ListCartItems(db, claims.UserID)
	if err != nil {
		log.Error("Failed to list cart items", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve cart"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"total": store.SumCartItems(items),
	})
}

// AddToCart adds a product to the cart, merging quantity on duplicates
func AddToCart(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	item, err := store.AddCartItem(database.GetDB(), claims.UserID, req.Img, req.Title, req.Price)
	if err != nil {
		if errors.Is(err, store.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing product data"})
		}
		log.Error("Failed to add cart item", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add to cart"})
	}

	prometheus.RecordCartOperation("add")
	log.Info("Cart item added",
		zap.Uint("user_id", claims.UserID),
		zap.String("img", item.Img),
		zap.Int("quantity", item.Quantity))

	if item.Quantity > 1 {
		return c.JSON(http.StatusOK, item)
	}
	return c.JSON(http.StatusCreated, item)
}

// RemoveCartItem deletes one cart row
func RemoveCartItem(c echo.Context) error {
	return cartItemAction(c, "remove", store.RemoveCartItem)
}

// IncrementCartItem raises a cart row's quantity by one
func IncrementCartItem(c echo.Context) error {
	return cartItemAction(c, "increment", store.IncrementCartItem)
}

// DecrementCartItem lowers a cart row's quantity by one, deleting it at zero
func DecrementCartItem(c echo.Context) error {
	return cartItemAction(c, "decrement", store.DecrementCartItem)
}

// ClearCart removes every cart row for the user
func ClearCart(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	if err := store.ClearCart(database.GetDB(), claims.UserID); err != nil {
		log.Error("Failed to clear cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to clear cart"})
	}

	prometheus.RecordCartOperation("clear")
	log.Info("Cart cleared", zap.Uint("user_id", claims.UserID))
	return c.JSON(http.StatusOK, echo.Map{"message": "cart cleared"})
}

// cartItemAction runs an ownership-checked mutation against one cart row.
func cartItemAction(c echo.Context, operation string, fn func(db *gorm.DB, userID, itemID uint) error) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	itemID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	if err := fn(database.GetDB(), claims.UserID, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Cart item not found",
				zap.Uint("user_id", claims.UserID),
				zap.Uint("item_id", itemID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cart item not found"})
		}
		log.Error("Cart operation failed",
			zap.String("operation", operation),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cart operation failed"})
	}

	prometheus.RecordCartOperation(operation)
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}

// parseID parses a path parameter into a row ID.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
