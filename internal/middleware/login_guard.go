package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ログイン済みユーザーだけを通す。
// 未ログインは通知を積んで/loginへ戻す。
func LoginGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFromContext(c)
			if !ok {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			if !sess.Authenticated() {
				sess.AddFlash("You need to be logged in to access this page.")
				return c.Redirect(http.StatusFound, "/login")
			}

			return next(c)
		}
	}
}
