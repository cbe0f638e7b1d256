package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/database/mongoclient"
	"github.com/hinatamarket/goapi/base/database/redisclient"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/base/metrics"
	bValidator "github.com/hinatamarket/goapi/base/validator"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/keys"
	mmiddleware "github.com/hinatamarket/goapi/middleware"
	"github.com/hinatamarket/goapi/service/cache"
	"github.com/hinatamarket/goapi/service/cache/compoundcache"
	"github.com/hinatamarket/goapi/service/cache/provider/primitive"
	redisCacheProvider "github.com/hinatamarket/goapi/service/cache/provider/redis"
	"github.com/hinatamarket/goapi/service/chain"
	"github.com/hinatamarket/goapi/service/chain/contract"
	"github.com/hinatamarket/goapi/service/query"
	"github.com/hinatamarket/goapi/service/redis"
	auth_delivery "github.com/hinatamarket/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/hinatamarket/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/hinatamarket/goapi/stores/auth/usecase"
	escrow_repository "github.com/hinatamarket/goapi/stores/escrow/repository"
	escrow_usecase "github.com/hinatamarket/goapi/stores/escrow/usecase"
	hc_delivery "github.com/hinatamarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/hinatamarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/hinatamarket/goapi/stores/healthcheck/usecase"
	listing_repository "github.com/hinatamarket/goapi/stores/listing/repository"
	listing_usecase "github.com/hinatamarket/goapi/stores/listing/usecase"
	marketplace_delivery "github.com/hinatamarket/goapi/stores/marketplace/delivery/http"
	marketplace_repository "github.com/hinatamarket/goapi/stores/marketplace/repository"
	marketplace_usecase "github.com/hinatamarket/goapi/stores/marketplace/usecase"
	order_repository "github.com/hinatamarket/goapi/stores/order/repository"
	order_usecase "github.com/hinatamarket/goapi/stores/order/usecase"
	paytoken_repository "github.com/hinatamarket/goapi/stores/paytoken/repository"
	royalty_usecase "github.com/hinatamarket/goapi/stores/royalty/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	networks := viper.Sub("networks")
	rpcs := make(map[int32]string)
	marketplaceAddresses := make(map[domain.ChainId]domain.Address)
	registryAddresses := make(map[domain.ChainId]domain.Address)
	roleStoreAddresses := make(map[domain.ChainId]domain.Address)
	for k := range networks.AllSettings() {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		marketplaceAddresses[domain.ChainId(chainId)] = domain.Address(networks.GetString(fmt.Sprintf("%s.marketplace", k))).ToLower()
		registryAddresses[domain.ChainId(chainId)] = domain.Address(networks.GetString(fmt.Sprintf("%s.collectionFactory", k))).ToLower()
		roleStoreAddresses[domain.ChainId(chainId)] = domain.Address(networks.GetString(fmt.Sprintf("%s.roleStore", k))).ToLower()
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		OperatorKey: viper.GetString("operator.privateKey"),
	})
	if chainService == nil {
		panic(err)
	}
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	operator := domain.Address(chainService.Operator().Hex()).ToLower()

	paymentToken := contract.NewErc20(chainService)
	assetLedger := contract.NewAssetLedger(chainService)
	erc1271Service := contract.NewErc1271(chainService)
	registry := contract.NewCollectionFactory(chainService, registryAddresses)
	roleStore := contract.NewRoleStore(chainService, roleStoreAddresses)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	paytokenRepo := paytoken_repository.NewPayTokenRepo(q)
	listingRepo := listing_repository.NewListingRepo(q)
	escrowRepo := escrow_repository.NewEscrowRepo(q)
	nonceRepo := order_repository.NewNonceRepo(q)
	settingsRepo := marketplace_repository.NewSettingsRepo(q)
	eventRepo := marketplace_repository.NewEventRepo(q)

	hc := hc_usecase.New(hcRepo)
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	escrowLedger := escrow_usecase.NewEscrowLedger(escrowRepo, paymentToken, operator)
	distributor := royalty_usecase.NewDistributor(registry)
	orderUC := order_usecase.NewOrderUseCase(&order_usecase.OrderUseCaseCfg{
		NonceRepo:            nonceRepo,
		Erc1271:              erc1271Service,
		MarketplaceAddresses: marketplaceAddresses,
	})
	listingUC := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		ListingRepo:  listingRepo,
		EventRepo:    eventRepo,
		PayTokenRepo: paytokenRepo,
		ConfigRepo:   settingsRepo,
		AssetLedger:  assetLedger,
		Registry:     registry,
		Escrow:       escrowLedger,
		Payment:      paymentToken,
		Distributor:  distributor,
		Operator:     operator,
	})
	settingsCache := compoundcache.NewCompoundCache([]cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   30 * time.Second,
			Pfx:   keys.PfxSettings,
			Cache: primitive.NewPrimitive(keys.PfxSettings, 64),
		}),
		cache.New(cache.ServiceConfig{
			Ttl:   5 * time.Minute,
			Pfx:   keys.PfxSettings,
			Cache: redisCacheProvider.NewRedis(redisCache),
		}),
	})
	marketplaceUC := marketplace_usecase.NewMarketplaceUseCase(&marketplace_usecase.MarketplaceUseCaseCfg{
		ListingUseCase: listingUC,
		ListingRepo:    listingRepo,
		EventRepo:      eventRepo,
		ConfigRepo:     settingsRepo,
		PayTokenRepo:   paytokenRepo,
		RoleStore:      roleStore,
		OrderUseCase:   orderUC,
		EscrowRepo:     escrowRepo,
		SettingsCache:  settingsCache,
	})

	authMiddleware := auth_middleware.New(auth, roleStore)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	marketplace_delivery.New(e, marketplaceUC, authMiddleware)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
