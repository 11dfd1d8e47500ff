package session

import (
	"app/internal/domain/model"
)

// デリバリーの段階選択の途中状態。
// 0は未選択を表す。
type DeliverySelection struct {
	PastaID int64 `json:"pasta_id"`
	SauceID int64 `json:"sauce_id"`
	DrinkID int64 `json:"drink_id"`
}

// 3つ揃っているか
func (s DeliverySelection) Complete() bool {
	return s.PastaID > 0 && s.SauceID > 0 && s.DrinkID > 0
}

func (s *DeliverySelection) Reset() {
	*s = DeliverySelection{}
}

// 1セッションの状態。カートはここにだけ存在する。
// 1セッションにつき同時アクセスは1リクエスト前提（画面操作は直列）。
type Session struct {
	ID       string
	UserID   int64
	UserName string
	Admin    bool

	Cart     model.Cart
	Delivery DeliverySelection

	flashes []string
}

// ログイン済みか
func (s *Session) Authenticated() bool {
	return s.UserID > 0
}

// 次のレスポンスで表示する通知を積む
func (s *Session) AddFlash(msg string) {
	s.flashes = append(s.flashes, msg)
}

// 積まれた通知を取り出してクリアする
func (s *Session) PopFlashes() []string {
	out := s.flashes
	s.flashes = nil
	if out == nil {
		return []string{}
	}
	return out
}

// ログアウト時に呼ぶ。セッションIDは維持したまま中身を空にする。
func (s *Session) Reset() {
	s.UserID = 0
	s.UserName = ""
	s.Admin = false
	s.Cart.Clear()
	s.Delivery.Reset()
	s.flashes = nil
}
