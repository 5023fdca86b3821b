package finance_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"goodlife-admin-api/internal/donation"
	"goodlife-admin-api/internal/expense"
	"goodlife-admin-api/internal/finance"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&donation.Donation{}, &expense.Expense{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func setupFinanceRouter(svc *finance.FinanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	finance.RegisterRoutes(r, svc)
	return r
}

func getReq(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}

func seedDonation(t *testing.T, db *gorm.DB, amount float64) {
	t.Helper()
	d := donation.Donation{DonorName: "seed", Amount: amount, DonationDate: "2026-01-01", DonationTime: "10:00:00"}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed donation: %v", err)
	}
}

func seedExpense(t *testing.T, db *gorm.DB, amount float64, category string) {
	t.Helper()
	e := expense.Expense{ItemName: "seed", Amount: amount, Category: category, ExpenseDate: "2026-01-02"}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed expense: %v", err)
	}
}
