package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/session"
)

// CheckoutUsecase はカートを注文＋注文明細に変換する。
// ヘッダと明細の作成は1トランザクションで、部分的な注文は絶対に残さない。
type CheckoutUsecase struct {
	tx    repo.TransactionManager
	users repo.UserRepository
}

func NewCheckoutUsecase(tx repo.TransactionManager, users repo.UserRepository) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, users: users}
}

// Checkout は確定した注文のIDを返す。
// 失敗時はカートに手を付けない（リトライできるように残す）。
func (u *CheckoutUsecase) Checkout(ctx context.Context, sess *session.Session) (int64, error) {
	if sess.Cart.IsEmpty() {
		return 0, ErrEmptyCart
	}

	// 配達先はこの時点のユーザー住所をコピーする（参照にしない）
	user, err := u.users.FindByID(ctx, sess.UserID)
	if err != nil {
		return 0, &CheckoutFailedError{Err: err}
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	// 合計はカートの提示価格で計算する。
	// SIMPLE行は追加時点の価格のまま（再検証しない）。
	total := sess.Cart.Total()

	var orderID int64

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		id, err := r.Orders().Create(ctx, model.Order{
			UserID:          sess.UserID,
			Status:          model.OrderStatusInProgress,
			TotalAmount:     total,
			DeliveryAddress: user.Address,
			CreatedAt:       now,
		})
		if err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(sess.Cart.Lines))
		for _, line := range sess.Cart.Lines {
			switch line.Kind {
			case model.CartLineDeliveryCombo:
				// コンボは部材3行に展開する。
				// 単価は確定時点のカタログ価格を引き直す（選択時の価格ではない）。
				for _, compID := range line.ComponentIDs {
					comp, err := r.DeliveryComponents().FindByID(ctx, compID)
					if errors.Is(err, repo.ErrNotFound) {
						return &CatalogLookupError{ComponentID: compID}
					}
					if err != nil {
						return err
					}

					items = append(items, model.OrderItem{
						ProductID: comp.ID,
						Quantity:  1,
						UnitPrice: comp.Price,
						CreatedAt: now,
					})
				}
			default:
				items = append(items, model.OrderItem{
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
					UnitPrice: line.UnitPrice,
					CreatedAt: now,
				})
			}
		}

		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return err
		}

		orderID = id
		return nil
	})

	if err != nil {
		// 部材消失はそのまま返す（ユーザーにリトライを促す）
		var cle *CatalogLookupError
		if errors.As(err, &cle) {
			return 0, err
		}
		return 0, &CheckoutFailedError{Err: err}
	}

	// commit後にだけカートを空にする。
	// 先に空にすると失敗時にカートごと消えてしまう。
	sess.Cart.Clear()

	return orderID, nil
}
