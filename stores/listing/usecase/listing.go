package usecase

import (
	"math/big"

	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	pricefomatter "github.com/x-xyz/marketgo/base/price_fomatter"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
)

type ListingUseCaseCfg struct {
	Marketplace    marketplace.Marketplace
	PriceFormatter pricefomatter.PriceFormatter
}

type listingUseCase struct {
	marketplace    marketplace.Marketplace
	priceFormatter pricefomatter.PriceFormatter
}

func NewListingUseCase(cfg *ListingUseCaseCfg) marketplace.ListingUseCase {
	return &listingUseCase{
		marketplace:    cfg.Marketplace,
		priceFormatter: cfg.PriceFormatter,
	}
}

func (u *listingUseCase) GetCanonicalListing(c bCtx.Ctx, asset domain.AssetId) (*marketplace.CanonicalListingView, error) {
	asset = asset.ToLower()

	directs, err := u.marketplace.GetValidDirectListings(c, asset)
	if err != nil {
		c.WithFields(log.Fields{
			"asset": asset,
			"err":   err,
		}).Error("marketplace.GetValidDirectListings failed")
		return nil, err
	}

	auctions, err := u.marketplace.GetValidEnglishAuctions(c, asset)
	if err != nil {
		c.WithFields(log.Fields{
			"asset": asset,
			"err":   err,
		}).Error("marketplace.GetValidEnglishAuctions failed")
		return nil, err
	}

	canonical := marketplace.ResolveCanonical(directs, auctions)
	view := &marketplace.CanonicalListingView{Listing: canonical}
	if canonical.Kind == marketplace.ListingKindNone {
		return view, nil
	}
	view.ForSale = true

	raw, ok := new(big.Int).SetString(canonical.PriceRaw(), 10)
	if !ok {
		c.WithFields(log.Fields{
			"asset": asset,
			"raw":   canonical.PriceRaw(),
		}).Error("invalid raw price")
		return nil, domain.ErrInvalidNumberFormat
	}

	display, symbol, err := u.priceFormatter.ToDisplay(c, asset.ChainId, canonical.Currency(), raw)
	if err != nil {
		// the listing is still surfaced, just without a formatted price
		c.WithFields(log.Fields{
			"asset": asset,
			"err":   err,
		}).Warn("priceFormatter.ToDisplay failed")
		return view, nil
	}
	view.DisplayPrice = display
	view.CurrencySymbol = symbol
	return view, nil
}
