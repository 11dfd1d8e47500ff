package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カート閲覧・追加・削除と注文確定のHTTP
type CartHandler struct {
	cartUC     *usecase.CartUsecase
	checkoutUC *usecase.CheckoutUsecase
}

// DI
func NewCartHandler(cartUC *usecase.CartUsecase, checkoutUC *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{cartUC: cartUC, checkoutUC: checkoutUC}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("")
	g.Use(middleware.LoginGuard())

	g.GET("/cart", h.view)
	g.GET("/cart/add/:id", h.add)
	g.GET("/cart/remove/:index", h.remove)
	g.GET("/checkout", h.checkout)
}

func (h *CartHandler) view(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	out := h.cartUC.View(sess)

	return c.JSON(http.StatusOK, echo.Map{
		"cart":    out,
		"flashes": sess.PopFlashes(),
	})
}

func (h *CartHandler) add(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	productID, perr := strconv.ParseInt(c.Param("id"), 10, 64)
	if perr != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, uerr := h.cartUC.AddProduct(c.Request().Context(), sess, productID)
	if uerr != nil {
		if he, ok := usecase.AsHTTPError(uerr); ok && he.Status == http.StatusNotFound {
			return flashRedirect(c, sess, "Product not found.", "/menu")
		}
		return writeError(c, uerr)
	}

	return flashRedirect(c, sess, fmt.Sprintf("%s added to cart!", p.Name), "/menu")
}

func (h *CartHandler) remove(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	// 古いindexが来ても黙って無視する（usecase側でno-op）
	index, perr := strconv.Atoi(c.Param("index"))
	if perr != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid index"})
	}

	h.cartUC.Remove(sess, index)

	return flashRedirect(c, sess, "Item removed from cart.", "/cart")
}

func (h *CartHandler) checkout(c echo.Context) error {
	sess, err := sessionFromContext(c)
	if err != nil {
		return err
	}

	orderID, uerr := h.checkoutUC.Checkout(c.Request().Context(), sess)
	if uerr != nil {
		// 空カートはエラーではなくメニューへ戻す
		if errors.Is(uerr, usecase.ErrEmptyCart) {
			return flashRedirect(c, sess, "Your cart is empty.", "/menu")
		}

		// 部材消失はカートを残したままリトライを促す
		var cle *usecase.CatalogLookupError
		if errors.As(uerr, &cle) {
			return flashRedirect(c, sess, "Some items are no longer available. Please try again.", "/cart")
		}

		if errors.Is(uerr, usecase.ErrUserNotFound) {
			// 認証済みセッションでは起きないはず
			return flashRedirect(c, sess, "Could not place your order. Please try again.", "/cart")
		}

		var cfe *usecase.CheckoutFailedError
		if errors.As(uerr, &cfe) {
			return flashRedirect(c, sess, "Could not place your order. Please try again.", "/cart")
		}

		return writeError(c, uerr)
	}

	msg := fmt.Sprintf("Order #%d placed! Check your profile to follow it.", orderID)
	return flashRedirect(c, sess, msg, "/orders")
}
