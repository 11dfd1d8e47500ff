package handler

import (
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 自分の注文履歴のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")
	g.Use(middleware.LoginGuard())

	g.GET("", h.list)
}

func (h *OrderHandler) list(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	out, uerr := h.uc.ListMyOrders(c.Request().Context(), sess.UserID)
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"orders":  out,
		"flashes": sess.PopFlashes(),
	})
}
