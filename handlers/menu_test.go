package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybites/tastybites/database"
)

func setupMock(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	database.TastyBites = db
	t.Cleanup(func() { db.Close() })
	return mock
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestParseQuantities(t *testing.T) {
	goodID := uuid.New()
	otherID := uuid.New()

	form := url.Values{
		"qty_" + goodID.String():  {"3"},
		"qty_" + otherID.String(): {"0"},
		"qty_not-a-uuid":          {"2"},
		"name":                    {"Guest"},
	}
	quantities := parseQuantities(form)
	require.Len(t, quantities, 1)
	assert.Equal(t, 3, quantities[goodID])
}

func TestParseQuantitiesBadValues(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name  string
		value string
	}{
		{"non-numeric", "abc"},
		{"negative", "-2"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{"qty_" + id.String(): {tt.value}}
			assert.Empty(t, parseQuantities(form))
		})
	}
}

func TestMenuPostEmptySelection(t *testing.T) {
	mock := setupMock(t)

	itemID := uuid.New()

	// the transaction opens, sees nothing selected, and rolls back
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, name, price FROM menu_items ORDER BY category, name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(itemID, "Ice Cream", 50))
	mock.ExpectRollback()

	// the form re-render re-reads the available menu
	mock.ExpectQuery(`FROM menu_items WHERE stock > 0 ORDER BY category`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price", "diet", "calories", "stock", "created_at"}))

	form := url.Values{
		"name":                   {"Guest"},
		"qty_" + itemID.String(): {"0"},
	}
	rec := httptest.NewRecorder()
	Menu(rec, postForm("/menu", form))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Select at least one item")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuPostInsufficientStock(t *testing.T) {
	mock := setupMock(t)

	itemID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, name, price FROM menu_items ORDER BY category, name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(itemID, "Veg Biryani", 120))
	mock.ExpectExec(`UPDATE menu_items SET stock = stock - \$1 WHERE id = \$2 AND stock >= \$1`).
		WithArgs(4, itemID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT stock FROM menu_items WHERE id = \$1`).
		WithArgs(itemID).
		WillReturnRows(sqlmock.NewRows([]string{"stock"}).AddRow(3))
	mock.ExpectRollback()

	form := url.Values{"qty_" + itemID.String(): {"4"}}
	rec := httptest.NewRecorder()
	Menu(rec, postForm("/menu", form))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Not enough stock for Veg Biryani. Available 3\n", rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMenuPostSuccessRedirects(t *testing.T) {
	mock := setupMock(t)

	itemID := uuid.New()
	orderID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, name, price FROM menu_items ORDER BY category, name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(itemID, "Masala Dosa", 70))
	mock.ExpectExec(`UPDATE menu_items SET stock = stock - \$1 WHERE id = \$2 AND stock >= \$1`).
		WithArgs(1, itemID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(orderID))
	mock.ExpectExec(`INSERT INTO order_items`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	form := url.Values{"qty_" + itemID.String(): {"1"}}
	rec := httptest.NewRecorder()
	Menu(rec, postForm("/menu", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/order_success/"+orderID.String(), rec.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
