package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/config"
	"app/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{SessionSecret: "test-secret"}
}

func runWithSession(t *testing.T, store *session.Store, cookie *http.Cookie, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := SessionLoader(store, testConfig())
	require.NoError(t, mw(handler)(c))
	return rec
}

func TestSessionLoaderIssuesNewSession(t *testing.T) {
	store := session.NewStore()

	var got *session.Session
	rec := runWithSession(t, store, nil, func(c echo.Context) error {
		sess, ok := SessionFromContext(c)
		require.True(t, ok)
		got = sess
		return c.NoContent(http.StatusOK)
	})

	require.NotNil(t, got)
	assert.NotNil(t, store.Get(got.ID))

	// 署名付きCookieが発行されている
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	sid, err := session.DecodeToken([]byte("test-secret"), cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, got.ID, sid)
}

func TestSessionLoaderRestoresExisting(t *testing.T) {
	store := session.NewStore()
	existing := store.New()
	existing.UserID = 42

	token, err := session.EncodeToken([]byte("test-secret"), existing.ID)
	require.NoError(t, err)

	var got *session.Session
	rec := runWithSession(t, store, &http.Cookie{Name: CookieName, Value: token}, func(c echo.Context) error {
		got, _ = SessionFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	assert.Same(t, existing, got)
	// 既存セッションならCookieを焼き直さない
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionLoaderRejectsTamperedCookie(t *testing.T) {
	store := session.NewStore()
	existing := store.New()

	// 別の鍵で署名されたトークン＝改ざん扱い
	token, err := session.EncodeToken([]byte("other-secret"), existing.ID)
	require.NoError(t, err)

	var got *session.Session
	runWithSession(t, store, &http.Cookie{Name: CookieName, Value: token}, func(c echo.Context) error {
		got, _ = SessionFromContext(c)
		return c.NoContent(http.StatusOK)
	})

	require.NotNil(t, got)
	assert.NotEqual(t, existing.ID, got.ID)
}

func TestLoginGuardRedirectsAnonymous(t *testing.T) {
	store := session.NewStore()

	var sess *session.Session
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	sess = store.New()
	c.Set(CtxSessionKey, sess)

	called := false
	err := LoginGuard()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, []string{"You need to be logged in to access this page."}, sess.PopFlashes())
}

func TestLoginGuardPassesAuthenticated(t *testing.T) {
	store := session.NewStore()
	sess := store.New()
	sess.UserID = 42

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxSessionKey, sess)

	called := false
	err := LoginGuard()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAdminGuardRedirectsNonAdmin(t *testing.T) {
	store := session.NewStore()
	sess := store.New()
	sess.UserID = 42 // ログイン済みでも管理者でなければ拒否

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxSessionKey, sess)

	called := false
	err := AdminGuard()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminGuardPassesAdmin(t *testing.T) {
	store := session.NewStore()
	sess := store.New()
	sess.Admin = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxSessionKey, sess)

	called := false
	err := AdminGuard()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}
