package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ninokhhh/lunacase/internal/store"
	"github.com/ninokhhh/lunacase/pkg/database"
	"github.com/ninokhhh/lunacase/pkg/logger"
	"github.com/ninokhhh/lunacase/prometheus"
	"go.uber.org/zap"
)

// GetWishlist returns the user's saved products
func GetWishlist(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	items, err := store.ListWishlistItems(database.GetDB(), claims.UserID)
	if err != nil {
		log.Error("Failed to list wishlist items", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve wishlist"})
	}

	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// AddToWishlist saves a product for later; re-adding is a no-op
func AddToWishlist(c echo.Context) error {
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

	item, created, err := store.AddWishlistItem(database.GetDB(), claims.UserID, req.Img, req.Title, req.Price)
	if err != nil {
		if errors.Is(err, store.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing product data"})
		}
		log.Error("Failed to add wishlist item", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to add to wishlist"})
	}

	if !created {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "already in wishlist",
			"item":    item,
		})
	}

	prometheus.RecordWishlistOperation("add")
	log.Info("Wishlist item added",
		zap.Uint("user_id", claims.UserID),
		zap.String("img", item.Img))
	return c.JSON(http.StatusCreated, item)
}

// RemoveWishlistItem deletes a saved product
func RemoveWishlistItem(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	itemID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	if err := store.RemoveWishlistItem(database.GetDB(), claims.UserID, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Wishlist item not found",
				zap.Uint("user_id", claims.UserID),
				zap.Uint("item_id", itemID))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "wishlist item not found"})
		}
		log.Error("Failed to remove wishlist item", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to remove from wishlist"})
	}

	prometheus.RecordWishlistOperation("remove")
	return c.JSON(http.StatusOK, echo.Map{"message": "removed from wishlist"})
}
