package usecase

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCheckoutFixture() (*CheckoutUsecase, *TxManagerMock, *OrderRepoMock, *OrderItemRepoMock, *ComponentRepoMock, *UserRepoMock) {
	orders := &OrderRepoMock{}
	orderItems := &OrderItemRepoMock{}
	components := &ComponentRepoMock{}
	users := &UserRepoMock{}

	tx := &TxManagerMock{
		Repos: &TxReposMock{
			orders:     orders,
			orderItems: orderItems,
			components: components,
			users:      users,
		},
	}

	uc := NewCheckoutUsecase(tx, users)
	return uc, tx, orders, orderItems, components, users
}

// 典型カート：通常商品（数量3、単価10.00）＋コンボ1つ（提示価格25.00）
func checkoutSession() *session.Session {
	sess := &session.Session{ID: "s1", UserID: 42}

	sess.Cart.AddItem(7, "Lasagna", dec("10.00"))
	sess.Cart.AddItem(7, "Lasagna", dec("10.00"))
	sess.Cart.AddItem(7, "Lasagna", dec("10.00"))

	sess.Cart.AddCombo(model.CartLine{
		Name:         "Delivery Combo (Spaghetti, Pesto, Cola)",
		UnitPrice:    dec("25.00"),
		Quantity:     1,
		ComponentIDs: []int64{101, 102, 103},
	})

	return sess
}

func TestCheckoutEmptyCart(t *testing.T) {
	uc, tx, _, _, _, users := newCheckoutFixture()

	sess := &session.Session{ID: "s1", UserID: 42}

	_, err := uc.Checkout(context.Background(), sess)

	require.ErrorIs(t, err, ErrEmptyCart)
	// 空カートではユーザー取得もトランザクションも走らない
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestCheckoutUserNotFound(t *testing.T) {
	uc, tx, _, _, _, users := newCheckoutFixture()

	sess := checkoutSession()
	users.On("FindByID", mock.Anything, int64(42)).Return(nil, nil)

	_, err := uc.Checkout(context.Background(), sess)

	require.ErrorIs(t, err, ErrUserNotFound)
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
	// カートは残る
	assert.Len(t, sess.Cart.Lines, 2)
}

func TestCheckoutHappyPath(t *testing.T) {
	uc, tx, orders, orderItems, components, users := newCheckoutFixture()

	sess := checkoutSession()

	users.On("FindByID", mock.Anything, int64(42)).
		Return(&model.User{ID: 42, Name: "Ana", Address: "Rua A, 12"}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	var createdOrder model.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Run(func(args mock.Arguments) {
			createdOrder = args.Get(1).(model.Order)
		}).
		Return(int64(555), nil)

	// コンボ部材は確定時点の価格で引き直す
	components.On("FindByID", mock.Anything, int64(101)).
		Return(model.DeliveryComponent{ID: 101, Name: "Spaghetti", Price: dec("12.00")}, nil)
	components.On("FindByID", mock.Anything, int64(102)).
		Return(model.DeliveryComponent{ID: 102, Name: "Pesto", Price: dec("6.00")}, nil)
	components.On("FindByID", mock.Anything, int64(103)).
		Return(model.DeliveryComponent{ID: 103, Name: "Cola", Price: dec("7.00")}, nil)

	var createdItems []model.OrderItem
	orderItems.On("CreateBulk", mock.Anything, int64(555), mock.AnythingOfType("[]model.OrderItem")).
		Run(func(args mock.Arguments) {
			createdItems = args.Get(2).([]model.OrderItem)
		}).
		Return(nil)

	orderID, err := uc.Checkout(context.Background(), sess)

	require.NoError(t, err)
	assert.Equal(t, int64(555), orderID)

	// ヘッダ：ステータスIN_PROGRESS、住所スナップショット、合計はカート提示価格
	assert.Equal(t, model.OrderStatusInProgress, createdOrder.Status)
	assert.Equal(t, "Rua A, 12", createdOrder.DeliveryAddress)
	assert.True(t, createdOrder.TotalAmount.Equal(dec("55.00")),
		"total should be 30.00 + 25.00, got %s", createdOrder.TotalAmount)

	// 明細：通常1行＋部材3行＝4行
	require.Len(t, createdItems, 4)

	assert.Equal(t, int64(7), createdItems[0].ProductID)
	assert.Equal(t, int64(3), createdItems[0].Quantity)
	assert.True(t, createdItems[0].UnitPrice.Equal(dec("10.00")))

	for i, want := range []struct {
		id    int64
		price string
	}{
		{101, "12.00"}, {102, "6.00"}, {103, "7.00"},
	} {
		item := createdItems[i+1]
		assert.Equal(t, want.id, item.ProductID)
		assert.Equal(t, int64(1), item.Quantity)
		assert.True(t, item.UnitPrice.Equal(dec(want.price)))
	}

	// commit後はカートが空になる
	assert.True(t, sess.Cart.IsEmpty())
}

// 提示価格と確定時価格がずれる非対称は現状の仕様。
// 合計はカートの提示価格（25.00）のまま、明細の部材単価は引き直した値になる。
func TestCheckoutComboRepricedButTotalKeepsQuote(t *testing.T) {
	uc, tx, orders, orderItems, components, users := newCheckoutFixture()

	sess := checkoutSession()

	users.On("FindByID", mock.Anything, int64(42)).
		Return(&model.User{ID: 42, Address: "Rua A, 12"}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	var createdOrder model.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Run(func(args mock.Arguments) {
			createdOrder = args.Get(1).(model.Order)
		}).
		Return(int64(556), nil)

	// 合計が40.00になる価格に改定されている
	components.On("FindByID", mock.Anything, int64(101)).
		Return(model.DeliveryComponent{ID: 101, Price: dec("20.00")}, nil)
	components.On("FindByID", mock.Anything, int64(102)).
		Return(model.DeliveryComponent{ID: 102, Price: dec("10.00")}, nil)
	components.On("FindByID", mock.Anything, int64(103)).
		Return(model.DeliveryComponent{ID: 103, Price: dec("10.00")}, nil)

	var createdItems []model.OrderItem
	orderItems.On("CreateBulk", mock.Anything, int64(556), mock.AnythingOfType("[]model.OrderItem")).
		Run(func(args mock.Arguments) {
			createdItems = args.Get(2).([]model.OrderItem)
		}).
		Return(nil)

	_, err := uc.Checkout(context.Background(), sess)
	require.NoError(t, err)

	// ヘッダ合計は提示価格ベース（30.00＋25.00）
	assert.True(t, createdOrder.TotalAmount.Equal(dec("55.00")))

	// 明細の部材は改定後の価格（合計40.00）
	sum := decimal.Zero
	for _, it := range createdItems[1:] {
		sum = sum.Add(it.UnitPrice)
	}
	assert.True(t, sum.Equal(dec("40.00")))
}

func TestCheckoutComponentVanished(t *testing.T) {
	uc, tx, orders, orderItems, components, users := newCheckoutFixture()

	sess := checkoutSession()

	users.On("FindByID", mock.Anything, int64(42)).
		Return(&model.User{ID: 42, Address: "Rua A, 12"}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Return(int64(557), nil)

	components.On("FindByID", mock.Anything, int64(101)).
		Return(model.DeliveryComponent{ID: 101, Price: dec("12.00")}, nil)
	// 2つ目の部材がカタログから消えている
	components.On("FindByID", mock.Anything, int64(102)).
		Return(model.DeliveryComponent{}, repo.ErrNotFound)

	_, err := uc.Checkout(context.Background(), sess)

	var cle *CatalogLookupError
	require.ErrorAs(t, err, &cle)
	assert.Equal(t, int64(102), cle.ComponentID)

	// 明細は1行も書かれず、カートはそのまま残る
	orderItems.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
	assert.Len(t, sess.Cart.Lines, 2)
}

func TestCheckoutTxFailureKeepsCart(t *testing.T) {
	uc, tx, orders, _, _, users := newCheckoutFixture()

	sess := checkoutSession()

	users.On("FindByID", mock.Anything, int64(42)).
		Return(&model.User{ID: 42, Address: "Rua A, 12"}, nil)
	tx.On("WithinTx", mock.Anything).Return(nil)

	orders.On("Create", mock.Anything, mock.AnythingOfType("model.Order")).
		Return(int64(0), errors.New("constraint violation"))

	_, err := uc.Checkout(context.Background(), sess)

	var cfe *CheckoutFailedError
	require.ErrorAs(t, err, &cfe)
	assert.Len(t, sess.Cart.Lines, 2)
}
