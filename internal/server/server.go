package server

import (
	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"
	"app/internal/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルート登録に必要なhandler一式。
type Handlers struct {
	Menu         *handler.MenuHandler
	Auth         *handler.AuthHandler
	Cart         *handler.CartHandler
	Delivery     *handler.DeliveryHandler
	Order        *handler.OrderHandler
	AdminCatalog *handler.AdminCatalogHandler
	AdminOrder   *handler.AdminOrderHandler
}

// New はechoを組み立てて返す。起動と停止はmainが握る。
func New(cfg config.Config, store *session.Store, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(middleware.SessionLoader(store, cfg))

	h.Menu.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Delivery.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.AdminCatalog.RegisterRoutes(e)
	h.AdminOrder.RegisterRoutes(e)

	return e
}
