package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"warehouse/internal/config"
	"warehouse/internal/domain/model"
	"warehouse/internal/handler"
	"warehouse/internal/infra/db"
	infraRepo "warehouse/internal/infra/repository"
	"warehouse/internal/logger"
	"warehouse/internal/mapper"
	"warehouse/internal/server"
	"warehouse/internal/usecase"
)

func main() {
	//.envはあれば読む
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.GoEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg.DSN())
	if err != nil {
		zl.Fatal("db connect failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderDetail{},
	); err != nil {
		zl.Fatal("migrate failed", zap.Error(err))
	}

	//初回だけシード投入
	if err := db.EnsureSeedData(gormDB); err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderDetailRepo := infraRepo.NewOrderDetailGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//マッピングレジストリは起動時に一度だけ作って持ち回す
	mappers := mapper.NewRegistry()

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, txManager, mappers, zl)
	customerUC := usecase.NewCustomerUsecase(customerRepo, txManager, mappers, zl)
	orderUC := usecase.NewOrderUsecase(orderRepo, txManager, mappers, zl)
	orderDetailUC := usecase.NewOrderDetailUsecase(orderDetailRepo, mappers, zl)

	//Handler生成
	productH := handler.NewProductHandler(productUC)
	customerH := handler.NewCustomerHandler(customerUC)
	orderH := handler.NewOrderHandler(orderUC)
	orderDetailH := handler.NewOrderDetailHandler(orderDetailUC)

	//Server起動
	zl.Info("starting warehouse api", zap.String("addr", cfg.Addr()))
	if err := server.Start(cfg.Addr(), zl, productH, customerH, orderH, orderDetailH); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
