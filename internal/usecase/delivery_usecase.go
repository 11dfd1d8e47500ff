package usecase

import (
	"context"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/session"

	"github.com/shopspring/decimal"
)

// DeliveryUsecase は段階選択（パスタ→ソース→ドリンク→確認）の流れ。
// 途中の選択はセッションのDeliverySelectionに積む。
type DeliveryUsecase struct {
	components repo.DeliveryComponentRepository
}

func NewDeliveryUsecase(components repo.DeliveryComponentRepository) *DeliveryUsecase {
	return &DeliveryUsecase{components: components}
}

// 各ステップの選択肢一覧

func (u *DeliveryUsecase) ListPasta(ctx context.Context) ([]model.DeliveryComponent, error) {
	return u.listByCategory(ctx, model.ComponentCategoryPasta)
}

func (u *DeliveryUsecase) ListSauces(ctx context.Context) ([]model.DeliveryComponent, error) {
	return u.listByCategory(ctx, model.ComponentCategorySauce)
}

func (u *DeliveryUsecase) ListDrinks(ctx context.Context) ([]model.DeliveryComponent, error) {
	return u.listByCategory(ctx, model.ComponentCategoryDrink)
}

func (u *DeliveryUsecase) listByCategory(ctx context.Context, categoryID int64) ([]model.DeliveryComponent, error) {
	items, err := u.components.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// 各ステップの選択。選んだIDをセッションに保存するだけ。

func (u *DeliveryUsecase) ChoosePasta(sess *session.Session, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid pasta id")
	}
	sess.Delivery.PastaID = id
	return nil
}

func (u *DeliveryUsecase) ChooseSauce(sess *session.Session, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid sauce id")
	}
	sess.Delivery.SauceID = id
	return nil
}

func (u *DeliveryUsecase) ChooseDrink(sess *session.Session, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid drink id")
	}
	sess.Delivery.DrinkID = id
	return nil
}

// 確認画面用
type ConfirmationView struct {
	Pasta model.DeliveryComponent `json:"pasta"`
	Sauce model.DeliveryComponent `json:"sauce"`
	Drink model.DeliveryComponent `json:"drink"`
	Total decimal.Decimal         `json:"total"`
}

// Confirmation は選択済みの3点と合計を返す。
// 選択が揃っていなければErrSelectionIncomplete（最初からやり直し）。
func (u *DeliveryUsecase) Confirmation(ctx context.Context, sess *session.Session) (ConfirmationView, error) {
	if !sess.Delivery.Complete() {
		return ConfirmationView{}, ErrSelectionIncomplete
	}

	pasta, sauce, drink, err := u.resolveSelection(ctx, sess.Delivery)
	if err != nil {
		return ConfirmationView{}, err
	}

	total := pasta.Price.Add(sauce.Price).Add(drink.Price)

	return ConfirmationView{
		Pasta: pasta,
		Sauce: sauce,
		Drink: drink,
		Total: total,
	}, nil
}

// Confirm は選択をDELIVERY_COMBOの1行としてカートに積む。
// 確定1回につき1行。内容が同じ確定が続いても別の行になる。
func (u *DeliveryUsecase) Confirm(ctx context.Context, sess *session.Session) (model.CartLine, error) {
	if !sess.Delivery.Complete() {
		return model.CartLine{}, ErrSelectionIncomplete
	}

	pasta, sauce, drink, err := u.resolveSelection(ctx, sess.Delivery)
	if err != nil {
		return model.CartLine{}, err
	}

	line := model.CartLine{
		Kind:         model.CartLineDeliveryCombo,
		Name:         fmt.Sprintf("Delivery Combo (%s, %s, %s)", pasta.Name, sauce.Name, drink.Name),
		UnitPrice:    pasta.Price.Add(sauce.Price).Add(drink.Price),
		Quantity:     1,
		ComponentIDs: []int64{pasta.ID, sauce.ID, drink.ID},
	}

	sess.Cart.AddCombo(line)
	return line, nil
}

// 選択中の3部材を取得する。
// 選択後にカタログから消えていた場合も選び直しに戻す。
func (u *DeliveryUsecase) resolveSelection(ctx context.Context, sel session.DeliverySelection) (pasta, sauce, drink model.DeliveryComponent, err error) {
	ids := []int64{sel.PastaID, sel.SauceID, sel.DrinkID}
	out := make([]model.DeliveryComponent, 0, 3)

	for _, id := range ids {
		c, ferr := u.components.FindByID(ctx, id)
		if ferr == repo.ErrNotFound {
			return pasta, sauce, drink, ErrSelectionIncomplete
		}
		if ferr != nil {
			return pasta, sauce, drink, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = append(out, c)
	}

	return out[0], out[1], out[2], nil
}
