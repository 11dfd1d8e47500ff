package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/session"

	"github.com/shopspring/decimal"
)

// CartUsecase はセッションカートの操作。
// カート自体はDBに触らない。商品追加時のカタログ参照だけ行う。
type CartUsecase struct {
	products repo.ProductRepository
}

func NewCartUsecase(products repo.ProductRepository) *CartUsecase {
	return &CartUsecase{products: products}
}

// カート表示用
type CartView struct {
	Lines []model.CartLine `json:"lines"`
	Total decimal.Decimal  `json:"total"`
}

// View はカート内容と合計を返す。合計は unit_price × quantity の総和。
func (u *CartUsecase) View(sess *session.Session) CartView {
	lines := sess.Cart.Lines
	if lines == nil {
		lines = []model.CartLine{}
	}
	return CartView{
		Lines: lines,
		Total: sess.Cart.Total(),
	}
}

// AddProduct はメニュー商品をカートに入れる。
// 価格は追加時点のカタログ価格を行に固定する。
func (u *CartUsecase) AddProduct(ctx context.Context, sess *session.Session, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	sess.Cart.AddItem(p.ID, p.Name, p.Price)
	return p, nil
}

// Remove は指定位置の行を消す。範囲外のindexは黙って無視する。
func (u *CartUsecase) Remove(sess *session.Session, index int) {
	sess.Cart.Remove(index)
}
