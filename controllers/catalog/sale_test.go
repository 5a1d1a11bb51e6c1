package catalogControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bilal010108/Halal-Market/models"
	"github.com/Bilal010108/Halal-Market/testutil"
)

func TestGetActiveSalesFiltersWindow(t *testing.T) {
	db := testutil.OpenTestDB(t)
	seller := testutil.CreateUser(t, db, "seller1", models.RoleSeller)
	store := testutil.CreateStore(t, db, seller)
	product := testutil.CreateProduct(t, db, store, "rice", 90)

	now := time.Now()
	running := models.Sale{
		ProductID:       product.ID,
		IsActive:        true,
		DiscountPercent: 20,
		StartDate:       now.Add(-24 * time.Hour),
		EndDate:         now.Add(24 * time.Hour),
	}
	expired := models.Sale{
		ProductID:       product.ID,
		IsActive:        true,
		DiscountPercent: 50,
		StartDate:       now.Add(-48 * time.Hour),
		EndDate:         now.Add(-24 * time.Hour),
	}
	flaggedOff := models.Sale{
		ProductID:       product.ID,
		IsActive:        false,
		DiscountPercent: 30,
		StartDate:       now.Add(-24 * time.Hour),
		EndDate:         now.Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(&running).Error)
	require.NoError(t, db.Create(&expired).Error)
	require.NoError(t, db.Create(&flaggedOff).Error)

	r := testutil.NewRouter()
	r.GET("/sales/", GetActiveSales(db))

	req := httptest.NewRequest(http.MethodGet, "/sales/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		ID                uint    `json:"id"`
		DiscountedPrice   float64 `json:"discounted_price"`
		StartDate         string  `json:"start_date"`
		IsCurrentlyActive bool    `json:"is_currently_active"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, running.ID, resp[0].ID)
	assert.Equal(t, 72.0, resp[0].DiscountedPrice) // 90 − 20%
	assert.True(t, resp[0].IsCurrentlyActive)
	assert.Equal(t, now.Add(-24*time.Hour).Format("02-01-2006"), resp[0].StartDate)
}

func TestSaleDiscountedPrice(t *testing.T) {
	sale := models.Sale{DiscountPercent: 25}
	assert.Equal(t, 75.0, sale.DiscountedPrice(100))

	noDiscount := models.Sale{DiscountPercent: 0}
	assert.Equal(t, 100.0, noDiscount.DiscountedPrice(100))
}

func TestGetProductsFilters(t *testing.T) {
	db := testutil.OpenTestDB(t)
	seller := testutil.CreateUser(t, db, "seller1", models.RoleSeller)
	store := testutil.CreateStore(t, db, seller)
	cheap := testutil.CreateProduct(t, db, store, "lepyoshka", 25)
	testutil.CreateProduct(t, db, store, "beef", 600)

	r := testutil.NewRouter()
	r.GET("/products/", GetProducts(db))

	req := httptest.NewRequest(http.MethodGet, "/products/?price_lt=100", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		ID          uint   `json:"id"`
		ProductName string `json:"product_name"`
		RatingCount string `json:"rating_count"`
		GoodRate    string `json:"good_rate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, cheap.ID, resp[0].ID)
	assert.Equal(t, "0", resp[0].RatingCount)
	assert.Equal(t, "0%", resp[0].GoodRate)

	req = httptest.NewRequest(http.MethodGet, "/products/?search=beef", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "beef", resp[0].ProductName)
}
