package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastybites/tastybites/config"
	"github.com/tastybites/tastybites/middlewares"
)

func init() {
	config.SecretKey = []byte("test-secret")
}

const userSelect = `FROM users WHERE username = \$1 AND role = \$2`

func TestCookLoginSuccess(t *testing.T) {
	mock := setupMock(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("cookpass"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(userSelect).
		WithArgs("cook", "cook").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role", "created_at"}).
			AddRow(uuid.New(), "cook", string(hash), "cook", time.Now()))

	form := url.Values{"username": {"cook"}, "password": {"cookpass"}}
	rec := httptest.NewRecorder()
	CookLogin(rec, postForm("/cook_login", form))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cook_dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middlewares.SessionCookie, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestCookLoginWrongPassword(t *testing.T) {
	mock := setupMock(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("cookpass"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(userSelect).
		WithArgs("cook", "cook").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "role", "created_at"}).
			AddRow(uuid.New(), "cook", string(hash), "cook", time.Now()))

	form := url.Values{"username": {"cook"}, "password": {"wrong"}}
	rec := httptest.NewRecorder()
	CookLogin(rec, postForm("/cook_login", form))

	// form re-renders with the error, no session cookie is set
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid cook credentials")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAdminLoginUnknownUser(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectQuery(userSelect).
		WithArgs("ghost", "admin").
		WillReturnError(sql.ErrNoRows)

	form := url.Values{"username": {"ghost"}, "password": {"pw"}}
	rec := httptest.NewRecorder()
	AdminLogin(rec, postForm("/admin_login", form))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid admin credentials")
}

func TestLogoutClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	Logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middlewares.SessionCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
