package public

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/catalog-next/internal/config"
	"github.com/catalog-next/internal/constants"
	handlershared "github.com/catalog-next/internal/http/handlers/shared"
	"github.com/catalog-next/internal/http/response"
	"github.com/catalog-next/internal/models"
	"github.com/catalog-next/internal/provider"
	"github.com/catalog-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserHeader = "X-Test-User"

var dsnUnsafe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

type apiEnvelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Page      int   `json:"page"`
		PageSize  int   `json:"page_size"`
		Total     int64 `json:"total"`
		TotalPage int64 `json:"total_page"`
	} `json:"pagination"`
}

type apiFixture struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
}

// newAPIFixture 使用内存数据库装配处理器，X-Test-User 头模拟已登录用户
func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dsnUnsafe.ReplaceAllString(t.Name(), "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{
		UserJWT: config.JWTConfig{SecretKey: "public-handler-test-secret", ExpireHours: 1},
		Catalog: config.CatalogConfig{PageSize: 2},
	}
	h := New(provider.NewContainerWithDB(cfg, db, nil))

	handlershared.RegisterValidators()
	r := gin.New()
	fakeAuth := func(required bool) gin.HandlerFunc {
		return func(c *gin.Context) {
			if raw := c.GetHeader(testUserHeader); raw != "" {
				id, _ := strconv.ParseUint(raw, 10, 64)
				c.Set("user_id", uint(id))
			} else if required {
				respondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
				c.Abort()
				return
			}
			c.Next()
		}
	}
	api := r.Group("/api/v1")
	api.GET("/products", fakeAuth(false), h.SearchProducts)
	api.GET("/products/:id", fakeAuth(false), h.GetProduct)
	api.GET("/coupons/:code", h.CheckCoupon)
	api.POST("/auth/login", h.Login)
	api.POST("/products/:id/favorite", fakeAuth(true), h.FavorProduct)
	api.DELETE("/products/:id/favorite", fakeAuth(true), h.DisfavorProduct)
	api.GET("/me/favorites", fakeAuth(true), h.ListFavorites)
	api.POST("/order-items/:id/review", fakeAuth(true), h.SubmitReview)

	return &apiFixture{t: t, db: db, engine: r}
}

func (f *apiFixture) do(method, path string, userID uint, body string) apiEnvelope {
	f.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Accept-Language", "en-US")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set(testUserHeader, strconv.FormatUint(uint64(userID), 10))
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	require.Equal(f.t, http.StatusOK, w.Code)

	var env apiEnvelope
	require.NoError(f.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func (f *apiFixture) createProduct(title string, onSale bool, price string, skuTitles ...string) *models.Product {
	f.t.Helper()
	product := &models.Product{Title: title, OnSale: onSale, Price: models.MustMoney(price), Rating: 5}
	for _, skuTitle := range skuTitles {
		product.SKUs = append(product.SKUs, models.ProductSKU{Title: skuTitle, Price: models.MustMoney(price), Stock: 10})
	}
	require.NoError(f.t, f.db.Create(product).Error)
	return product
}

func (f *apiFixture) createUser(email, password string) *models.User {
	f.t.Helper()
	hash, err := service.HashPassword(password)
	require.NoError(f.t, err)
	user := &models.User{Email: email, Name: strings.Split(email, "@")[0], PasswordHash: hash, Status: constants.UserStatusActive}
	require.NoError(f.t, f.db.Create(user).Error)
	return user
}

func (f *apiFixture) createOrderItem(user *models.User, product *models.Product, paid bool) *models.OrderItem {
	f.t.Helper()
	order := &models.Order{No: fmt.Sprintf("T-%d-%d", user.ID, time.Now().UnixNano()), UserID: user.ID, Status: constants.OrderStatusPendingPayment}
	if paid {
		paidAt := time.Now().Add(-time.Hour)
		order.PaidAt = &paidAt
		order.Status = constants.OrderStatusPaid
	}
	require.NoError(f.t, f.db.Create(order).Error)
	item := &models.OrderItem{OrderID: order.ID, ProductID: product.ID, ProductSKUID: product.SKUs[0].ID, Amount: 1, Price: product.Price}
	require.NoError(f.t, f.db.Create(item).Error)
	return item
}

func decodeData(t *testing.T, env apiEnvelope, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest), string(env.Data))
}
