package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	components repo.DeliveryComponentRepository
	users      repo.UserRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository                         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository                 { return r.orderItems }
func (r *TxReposMock) Products() repo.ProductRepository                     { return r.products }
func (r *TxReposMock) DeliveryComponents() repo.DeliveryComponentRepository { return r.components }
func (r *TxReposMock) Users() repo.UserRepository                           { return r.users }

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAllWithUser(ctx context.Context) ([]repo.OrderWithUser, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.OrderWithUser)
	return rows, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in these tests")
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in these tests")
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in these tests")
}

type ComponentRepoMock struct{ mock.Mock }

func (m *ComponentRepoMock) List(ctx context.Context) ([]model.DeliveryComponent, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.DeliveryComponent)
	return items, args.Error(1)
}

func (m *ComponentRepoMock) ListByCategory(ctx context.Context, categoryID int64) ([]model.DeliveryComponent, error) {
	args := m.Called(ctx, categoryID)
	items, _ := args.Get(0).([]model.DeliveryComponent)
	return items, args.Error(1)
}

func (m *ComponentRepoMock) FindByID(ctx context.Context, id int64) (model.DeliveryComponent, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.DeliveryComponent)
	return c, args.Error(1)
}

func (m *ComponentRepoMock) Create(ctx context.Context, c model.DeliveryComponent) (model.DeliveryComponent, error) {
	panic("not used in these tests")
}

func (m *ComponentRepoMock) Update(ctx context.Context, c model.DeliveryComponent) error {
	panic("not used in these tests")
}

func (m *ComponentRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in these tests")
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
