package handler

import (
	"errors"
	"net/http"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 段階選択（パスタ→ソース→ドリンク→確認）のHTTP
type DeliveryHandler struct {
	uc *usecase.DeliveryUsecase
}

// DI
func NewDeliveryHandler(uc *usecase.DeliveryUsecase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

type chooseRequest struct {
	ID int64 `json:"id" form:"id"`
}

func (h *DeliveryHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/delivery")
	g.Use(middleware.LoginGuard())

	g.GET("", h.start)
	g.GET("/pasta", h.listPasta)
	g.POST("/pasta", h.choosePasta)
	g.GET("/sauce", h.listSauces)
	g.POST("/sauce", h.chooseSauce)
	g.GET("/drink", h.listDrinks)
	g.POST("/drink", h.chooseDrink)
	g.GET("/confirm", h.confirmation)
	g.POST("/confirm", h.confirm)
}

// 入口は常にパスタ選択へ
func (h *DeliveryHandler) start(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/delivery/pasta")
}

func (h *DeliveryHandler) listPasta(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	items, uerr := h.uc.ListPasta(c.Request().Context())
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"pastas":  items,
		"flashes": sess.PopFlashes(),
	})
}

func (h *DeliveryHandler) choosePasta(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	var req chooseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if uerr := h.uc.ChoosePasta(sess, req.ID); uerr != nil {
		return writeError(c, uerr)
	}

	return c.Redirect(http.StatusFound, "/delivery/sauce")
}

func (h *DeliveryHandler) listSauces(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	items, uerr := h.uc.ListSauces(c.Request().Context())
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"sauces":  items,
		"flashes": sess.PopFlashes(),
	})
}

func (h *DeliveryHandler) chooseSauce(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	var req chooseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if uerr := h.uc.ChooseSauce(sess, req.ID); uerr != nil {
		return writeError(c, uerr)
	}

	return c.Redirect(http.StatusFound, "/delivery/drink")
}

func (h *DeliveryHandler) listDrinks(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	items, uerr := h.uc.ListDrinks(c.Request().Context())
	if uerr != nil {
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"drinks":  items,
		"flashes": sess.PopFlashes(),
	})
}

func (h *DeliveryHandler) chooseDrink(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	var req chooseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if uerr := h.uc.ChooseDrink(sess, req.ID); uerr != nil {
		return writeError(c, uerr)
	}

	return c.Redirect(http.StatusFound, "/delivery/confirm")
}

func (h *DeliveryHandler) confirmation(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	view, uerr := h.uc.Confirmation(c.Request().Context(), sess)
	if uerr != nil {
		// 揃っていなければエラーにせず最初のステップへ戻す
		if errors.Is(uerr, usecase.ErrSelectionIncomplete) {
			return flashRedirect(c, sess, "You need to choose pasta, sauce and drink.", "/delivery/pasta")
		}
		return writeError(c, uerr)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"confirmation": view,
		"flashes":      sess.PopFlashes(),
	})
}

func (h *DeliveryHandler) confirm(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	if _, uerr := h.uc.Confirm(c.Request().Context(), sess); uerr != nil {
		if errors.Is(uerr, usecase.ErrSelectionIncomplete) {
			return flashRedirect(c, sess, "You need to choose pasta, sauce and drink.", "/delivery/pasta")
		}
		return writeError(c, uerr)
	}

	return flashRedirect(c, sess, "Delivery combo added to cart!", "/cart")
}
