package usecase

import (
	"math/big"

	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	pricefomatter "github.com/x-xyz/marketgo/base/price_fomatter"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
)

type HistoryUseCaseCfg struct {
	Marketplace    marketplace.Marketplace
	Collection     marketplace.CollectionContract
	PriceFormatter pricefomatter.PriceFormatter
}

type historyUseCase struct {
	marketplace    marketplace.Marketplace
	collection     marketplace.CollectionContract
	priceFormatter pricefomatter.PriceFormatter
}

func NewHistoryUseCase(cfg *HistoryUseCaseCfg) marketplace.HistoryUseCase {
	return &historyUseCase{
		marketplace:    cfg.Marketplace,
		collection:     cfg.Collection,
		priceFormatter: cfg.PriceFormatter,
	}
}

// GetTimeline loads transfer and bid logs independently. A failed stream
// degrades to its empty part; the timeline errors only when both fail.
func (u *historyUseCase) GetTimeline(c bCtx.Ctx, asset domain.AssetId) ([]marketplace.TimelineEntry, error) {
	asset = asset.ToLower()

	transfers, terr := u.collection.TransferEvents(c, asset)
	if terr != nil {
		c.WithFields(log.Fields{
			"asset": asset,
			"err":   terr,
		}).Warn("collection.TransferEvents failed")
		transfers = nil
	}

	bids, berr := u.marketplace.BidEvents(c, asset)
	if berr != nil {
		c.WithFields(log.Fields{
			"asset": asset,
			"err":   berr,
		}).Warn("marketplace.BidEvents failed")
		bids = nil
	}

	if terr != nil && berr != nil {
		return []marketplace.TimelineEntry{}, domain.ErrEventQueryFailed
	}

	return marketplace.BuildTimeline(asset, transfers, bids, u.formatAmount(c, asset.ChainId)), nil
}

func (u *historyUseCase) formatAmount(c bCtx.Ctx, chainId domain.ChainId) marketplace.AmountFormatter {
	return func(currency domain.Address, amountRaw string) (string, string) {
		raw, ok := new(big.Int).SetString(amountRaw, 10)
		if !ok {
			c.WithFields(log.Fields{
				"amount": amountRaw,
			}).Warn("invalid raw bid amount")
			return "", ""
		}
		display, symbol, err := u.priceFormatter.ToDisplay(c, chainId, currency, raw)
		if err != nil {
			c.WithFields(log.Fields{
				"chainId":  chainId,
				"currency": currency,
				"err":      err,
			}).Warn("priceFormatter.ToDisplay failed")
			return "", ""
		}
		return display, symbol
	}
}
