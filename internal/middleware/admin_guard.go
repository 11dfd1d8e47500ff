package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//セッションの管理者フラグを確認します。

func AdminGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := SessionFromContext(c)
			if !ok {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			//一般ユーザーは拒否、管理者だけ許可
			if !sess.Admin {
				sess.AddFlash("Restricted to administrators.")
				return c.Redirect(http.StatusFound, "/admin/login")
			}

			return next(c)
		}
	}
}
