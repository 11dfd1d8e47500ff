package middleware

import (
	"net/http"

	"app/internal/config"
	"app/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	CookieName    = "session"
	CtxSessionKey = "session" // *session.Session
)

// SessionLoader は署名付きCookieからセッションを復元してcontextに入れる。
// Cookieが無い・署名が不正・ストアに無い場合は新しいセッションを発行する。
func SessionLoader(store *session.Store, cfg config.Config) echo.MiddlewareFunc {
	secret := []byte(cfg.SessionSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sess *session.Session

			if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
				if sid, derr := session.DecodeToken(secret, cookie.Value); derr == nil {
					sess = store.Get(sid)
				}
			}

			if sess == nil {
				sess = store.New()

				token, err := session.EncodeToken(secret, sess.ID)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
				}

				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxSessionKey, sess)
			return next(c)
		}
	}
}

// contextからセッションを取り出す
func SessionFromContext(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(CtxSessionKey).(*session.Session)
	return sess, ok && sess != nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
