package model

import (
	"github.com/shopspring/decimal"
)

type CartLineKind string

const (
	CartLineSimple        CartLineKind = "SIMPLE"
	CartLineDeliveryCombo CartLineKind = "DELIVERY_COMBO"
)

// カートの1行。セッション内だけで生きる（DBには保存しない）。
// UnitPriceは追加時点のカタログ価格のスナップショット。
type CartLine struct {
	Kind      CartLineKind    `json:"kind"`
	ProductID int64           `json:"product_id,omitempty"` // SIMPLEのみ
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	// DELIVERY_COMBOのみ。[パスタ, ソース, ドリンク] の順。
	ComponentIDs []int64 `json:"component_ids,omitempty"`
}

// 行の小計
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// セッションスコープのカート。挿入順を保持する。
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddItem は通常商品を追加する。
// 同じ商品のSIMPLE行が既にあれば数量を+1、無ければ末尾に追加。
func (c *Cart) AddItem(productID int64, name string, unitPrice decimal.Decimal) {
	for i := range c.Lines {
		if c.Lines[i].Kind == CartLineSimple && c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		Kind:      CartLineSimple,
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// AddCombo はデリバリーの組み合わせを追加する。
// 確定1回につき1行。内容が同じでもマージしない。
func (c *Cart) AddCombo(line CartLine) {
	line.Kind = CartLineDeliveryCombo
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	c.Lines = append(c.Lines, line)
}

// Remove は指定位置の行を削除する。範囲外は何もしない。
// クライアントから古いindexが来てもエラーにしない。
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total は全行の unit_price × quantity の合計。空なら0。
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
