package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/ninokhhh/lunacase/internal/model"
	"github.com/ninokhhh/lunacase/pkg/config"
	"github.com/ninokhhh/lunacase/pkg/database"
	"github.com/ninokhhh/lunacase/pkg/jwtutil"
	"github.com/ninokhhh/lunacase/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var metricsOnce sync.Once

// setupTest points the package-global DB at a fresh in-memory database and
// makes sure the metric registry is initialized exactly once per test binary.
func setupTest(t *testing.T) *gorm.DB {
	t.Helper()

	metricsOnce.Do(func() {
		cfg, err := config.Load("lunacase_test")
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		prometheus.InitMetrics(cfg)
	})

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
	))

	database.DB = db
	return db
}

// newContext builds an Echo context carrying a JSON body and, when claims is
// non-nil, an authenticated identity the way the auth middleware would.
func newContext(t *testing.T, method, target string, body interface{}, claims *jwtutil.UserClaims) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := echo.New().NewContext(req, rec)
	if claims != nil {
		c.Set("user", claims)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func claimsFor(user *model.User) *jwtutil.UserClaims {
	return &jwtutil.UserClaims{
		Email:   user.Email,
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}
}
