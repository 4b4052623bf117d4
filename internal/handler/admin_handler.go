package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ninokhhh/lunacase/internal/store"
	"github.com/ninokhhh/lunacase/pkg/database"
	"github.com/ninokhhh/lunacase/pkg/logger"
	"go.uber.org/zap"
)

// AdminListUsers returns every account, newest first. Read-only.
func AdminListUsers(c echo.Context) error {
	log := logger.FromEcho(c)

	users, err := store.ListUsers(database.GetDB())
	if err != nil {
		log.Error("Failed to list users", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve users"})
	}

	return c.JSON(http.StatusOK, users)
}

// AdminListOrders returns every order with items and owner, newest first.
// Read-only.
func AdminListOrders(c echo.Context) error {
	log := logger.FromEcho(c)

	orders, err := store.ListAllOrders(database.GetDB())
	if err != nil {
		log.Error("Failed to list orders", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve orders"})
	}

	return c.JSON(http.StatusOK, orders)
}
