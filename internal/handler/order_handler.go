package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ninokhhh/lunacase/internal/store"
	"github.com/ninokhhh/lunacase/pkg/database"
	"github.com/ninokhhh/lunacase/pkg/logger"
	"github.com/ninokhhh/lunacase/prometheus"
	"go.uber.org/zap"
)

// Checkout converts the user's cart into an order
func Checkout(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	var info store.ShippingInfo
	if err := c.Bind(&info); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	defer prometheus.TrackDBOperation("checkout")(time.Now())
	order, err := store.Checkout(database.GetDB(), claims.UserID, info)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMissingFields):
			prometheus.RecordCheckoutError("missing_fields")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "please fill all shipping fields"})
		case errors.Is(err, store.ErrEmptyCart):
			prometheus.RecordCheckoutError("empty_cart")
			log.Warn("Checkout attempted with empty cart", zap.Uint("user_id", claims.UserID))
			return c.JSON(http.StatusConflict, echo.Map{"error": "your cart is empty"})
		default:
			prometheus.RecordCheckoutError("db_error")
			log.Error("Checkout failed", zap.Uint("user_id", claims.UserID), zap.Error(err))
			// The transaction rolled back, so resubmitting is safe.
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed, please try again"})
		}
	}

	prometheus.RecordCheckout(order.Total)
	log.Info("Order placed",
		zap.Uint("user_id", claims.UserID),
		zap.Uint("order_id", order.ID),
		zap.Int("total", order.Total),
		zap.Int("items", len(order.Items)))
	return c.JSON(http.StatusCreated, order)
}

// GetOrder returns one of the user's orders, the order-success view's data
func GetOrder(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	orderID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
	}

	order, err := store.GetOrder(database.GetDB(), claims.UserID, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		log.Error("Failed to load order", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load order"})
	}

	return c.JSON(http.StatusOK, order)
}

// ListOrders returns the user's order history
func ListOrders(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	log := logger.FromEcho(c)

	orders, err := store.ListUserOrders(database.GetDB(), claims.UserID)
	if err != nil {
		log.Error("Failed to list orders", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve orders"})
	}

	return c.JSON(http.StatusOK, orders)
}
