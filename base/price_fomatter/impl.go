package pricefomatter

import (
	"fmt"
	"math/big"
	"sync"

	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	"github.com/x-xyz/marketgo/domain"
)

type PriceFormatterCfg struct {
	Currencies domain.CurrencyRegistry
}

type impl struct {
	currencies domain.CurrencyRegistry

	// mutex protected members
	mutex         sync.Mutex
	currencyCache map[string]*domain.Currency
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	return &impl{
		currencies:    cfg.Currencies,
		currencyCache: make(map[string]*domain.Currency),
	}
}

func (f *impl) getCurrency(ctx bCtx.Ctx, chainId domain.ChainId, currency domain.Address) (*domain.Currency, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	key := fmt.Sprintf("%d%s", chainId, currency.ToLower())
	c, ok := f.currencyCache[key]
	if ok {
		return c, nil
	}
	c, err := f.currencies.Get(ctx, chainId, currency)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId":  chainId,
			"currency": currency,
			"err":      err,
		}).Error("currencies.Get failed")
		return nil, err
	}
	f.currencyCache[key] = c
	return c, nil
}

func (f *impl) ToDisplay(ctx bCtx.Ctx, chainId domain.ChainId, currency domain.Address, raw *big.Int) (string, string, error) {
	c, err := f.getCurrency(ctx, chainId, currency)
	if err != nil {
		ctx.WithField("err", err).Error("getCurrency failed")
		return "", "", err
	}
	return FormatUnits(raw, c.Decimals), c.Symbol, nil
}

func (f *impl) ToRaw(ctx bCtx.Ctx, chainId domain.ChainId, currency domain.Address, display string) (*big.Int, error) {
	c, err := f.getCurrency(ctx, chainId, currency)
	if err != nil {
		ctx.WithField("err", err).Error("getCurrency failed")
		return nil, err
	}
	return ParseUnits(display, c.Decimals)
}
