package usecase

import (
	"errors"
	"fmt"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// チェックアウト系のエラー。handlerがflash＋redirectに変換する。
var (
	// カートが空のまま確定しようとした（メニューに戻す）
	ErrEmptyCart = errors.New("cart is empty")
	// セッションのuser_idに対応するユーザーがいない
	ErrUserNotFound = errors.New("user not found")
	// デリバリーの段階選択が揃っていない（パスタ選択からやり直し）
	ErrSelectionIncomplete = errors.New("delivery selection incomplete")
)

// 確定時にコンボ部材がカタログから消えていた。
// トランザクション全体をrollbackさせる。
type CatalogLookupError struct {
	ComponentID int64
}

func (e *CatalogLookupError) Error() string {
	return fmt.Sprintf("catalog lookup failed for component %d", e.ComponentID)
}

// 注文確定トランザクションの失敗を包む。
// これが返るとき部分的な注文は一切残っていない。
type CheckoutFailedError struct {
	Err error
}

func (e *CheckoutFailedError) Error() string {
	return fmt.Sprintf("checkout failed: %v", e.Err)
}

func (e *CheckoutFailedError) Unwrap() error {
	return e.Err
}
