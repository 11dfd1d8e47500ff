package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	components repo.DeliveryComponentRepository
	users      repo.UserRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                           { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository                   { return r.orderItems }
func (r *txReposGorm) Products() repo.ProductRepository                       { return r.products }
func (r *txReposGorm) DeliveryComponents() repo.DeliveryComponentRepository   { return r.components }
func (r *txReposGorm) Users() repo.UserRepository                             { return r.users }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:     NewOrderGormRepository(tx),
			orderItems: NewOrderItemGormRepository(tx),
			products:   NewProductGormRepository(tx),
			components: NewDeliveryComponentGormRepository(tx),
			users:      NewUserGormRepository(tx),
		}
		return fn(r)
	})
}
