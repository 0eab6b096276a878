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
	"github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	pricefomatter "github.com/x-xyz/marketgo/base/price_fomatter"
	bValidator "github.com/x-xyz/marketgo/base/validator"
	"github.com/x-xyz/marketgo/domain"
	mmiddleware "github.com/x-xyz/marketgo/middleware"
	"github.com/x-xyz/marketgo/service/chain"
	"github.com/x-xyz/marketgo/service/chain/contract"
	approval_usecase "github.com/x-xyz/marketgo/stores/approval/usecase"
	asset_delivery "github.com/x-xyz/marketgo/stores/asset/delivery/http"
	asset_usecase "github.com/x-xyz/marketgo/stores/asset/usecase"
	hc_delivery "github.com/x-xyz/marketgo/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/marketgo/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/marketgo/stores/healthcheck/usecase"
	history_usecase "github.com/x-xyz/marketgo/stores/history/usecase"
	listing_usecase "github.com/x-xyz/marketgo/stores/listing/usecase"
	trade_delivery "github.com/x-xyz/marketgo/stores/trade/delivery/http"
	trade_usecase "github.com/x-xyz/marketgo/stores/trade/usecase"
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

	// init chain service
	context.Info("init chain service")
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[domain.ChainId]string)
	marketplaces := make(map[domain.ChainId]domain.Address)
	chainIds := []domain.ChainId{}
	for k := range keys {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		marketplaces[chainId] = domain.Address(networks.GetString(fmt.Sprintf("%s.marketplace", k))).ToLower()
		chainIds = append(chainIds, chainId)
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		OperatorKey: viper.GetString("operator.privateKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)
	erc20Service := contract.NewErc20(chainService)
	marketplaceService := contract.NewMarketplace(chainService, &contract.MarketplaceCfg{
		Addresses: marketplaces,
	})

	priceFormatter := pricefomatter.NewPriceFormatter(&pricefomatter.PriceFormatterCfg{
		Currencies: erc20Service,
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(chainService, chainIds)
	hc := hc_usecase.New(hcRepo)
	listing := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Marketplace:    marketplaceService,
		PriceFormatter: priceFormatter,
	})
	history := history_usecase.NewHistoryUseCase(&history_usecase.HistoryUseCaseCfg{
		Marketplace:    marketplaceService,
		Collection:     erc721Service,
		PriceFormatter: priceFormatter,
	})
	approval := approval_usecase.NewApprovalUseCase(&approval_usecase.ApprovalUseCaseCfg{
		Collection: erc721Service,
		Operators:  marketplaces,
	})
	asset := asset_usecase.NewAssetUseCase(&asset_usecase.AssetUseCaseCfg{
		Listing: listing,
		History: history,
	})
	trade := trade_usecase.NewTradeUseCase(&trade_usecase.TradeUseCaseCfg{
		Marketplace:    marketplaceService,
		Collection:     erc721Service,
		Listing:        listing,
		Approval:       approval,
		PriceFormatter: priceFormatter,
	})

	hc_delivery.New(e, hc)
	asset_delivery.New(e, asset, listing, history)
	trade_delivery.New(e, trade)

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
