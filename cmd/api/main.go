package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/session"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	// プールはここで生成してShutdownでCloseする
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	gormDB, err := db.OpenGorm(pool)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.DeliveryComponent{},
		&model.User{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	componentRepo := infraRepo.NewDeliveryComponentGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//セッションストア
	store := session.NewStore()

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, componentRepo, categoryRepo)
	cartUC := usecase.NewCartUsecase(productRepo)
	deliveryUC := usecase.NewDeliveryUsecase(componentRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, userRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, orderRepo)
	authUC := usecase.NewAuthUsecase(userRepo, cfg.AdminPassword)

	//Handler生成
	handlers := server.Handlers{
		Menu:         handler.NewMenuHandler(catalogUC),
		Auth:         handler.NewAuthHandler(authUC),
		Cart:         handler.NewCartHandler(cartUC, checkoutUC),
		Delivery:     handler.NewDeliveryHandler(deliveryUC),
		Order:        handler.NewOrderHandler(orderUC),
		AdminCatalog: handler.NewAdminCatalogHandler(catalogUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC),
	}

	e := server.New(cfg, store, handlers)

	//Server起動
	go func() {
		addr := ":" + cfg.Port
		if err := e.Start(addr); err != nil {
			log.Println(err)
		}
	}()

	//SIGINT/SIGTERMで止める。処理中のリクエストを待ってからプールを閉じる。
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Println(err)
	}
}
