package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/session"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// contextのセッション。SessionLoaderが必ず入れている前提。
func sessionFromContext(c echo.Context) (*session.Session, error) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return sess, nil
}

// 通知を積んでリダイレクト（flash相当）
func flashRedirect(c echo.Context, sess *session.Session, msg string, location string) error {
	sess.AddFlash(msg)
	return c.Redirect(http.StatusFound, location)
}

// 公開メニュー
type MenuHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewMenuHandler(uc *usecase.CatalogUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", h.list)
}

func (h *MenuHandler) list(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	items, uerr := h.uc.ListMenu(c.Request().Context())
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": items,
		"flashes":  sess.PopFlashes(),
	})
}
