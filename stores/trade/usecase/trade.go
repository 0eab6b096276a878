package usecase

import (
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	"github.com/x-xyz/marketgo/base/metrics"
	pricefomatter "github.com/x-xyz/marketgo/base/price_fomatter"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
	"golang.org/x/xerrors"
)

// offers against a direct listing stay valid for a week
const offerValidity = 7 * 24 * time.Hour

type TradeUseCaseCfg struct {
	Marketplace    marketplace.Marketplace
	Collection     marketplace.CollectionContract
	Listing        marketplace.ListingUseCase
	Approval       marketplace.ApprovalUseCase
	PriceFormatter pricefomatter.PriceFormatter
}

type tradeUseCase struct {
	marketplace    marketplace.Marketplace
	collection     marketplace.CollectionContract
	listing        marketplace.ListingUseCase
	approval       marketplace.ApprovalUseCase
	priceFormatter pricefomatter.PriceFormatter
	metrics        *metrics.Service
}

func NewTradeUseCase(cfg *TradeUseCaseCfg) marketplace.TradeUseCase {
	return &tradeUseCase{
		marketplace:    cfg.Marketplace,
		collection:     cfg.Collection,
		listing:        cfg.Listing,
		approval:       cfg.Approval,
		priceFormatter: cfg.PriceFormatter,
		metrics:        metrics.New("trade"),
	}
}

func (u *tradeUseCase) CreateAuction(c bCtx.Ctx, req *marketplace.CreateAuctionRequest) (*marketplace.TradeResult, error) {
	stage := marketplace.TradeStageValidating

	if err := validateCreateAuction(req); err != nil {
		return u.failed(c, "create_auction", stage, err), nil
	}

	asset := req.Asset.ToLower()
	owner, err := u.collection.OwnerOf(c, asset)
	if err != nil {
		return u.failed(c, "create_auction", stage, err), nil
	}
	if !owner.Equals(req.Owner) {
		return u.failed(c, "create_auction", stage, domain.ErrNotTokenOwner), nil
	}

	minRaw, err := u.priceFormatter.ToRaw(c, asset.ChainId, req.Currency, req.MinimumBid)
	if err != nil {
		return u.failed(c, "create_auction", stage, err), nil
	}
	buyoutRaw := big.NewInt(0)
	if req.BuyoutPrice != "" {
		if buyoutRaw, err = u.priceFormatter.ToRaw(c, asset.ChainId, req.Currency, req.BuyoutPrice); err != nil {
			return u.failed(c, "create_auction", stage, err), nil
		}
	}

	stage = marketplace.TradeStageGating
	if _, err := u.approval.EnsureApproval(c, asset, req.Owner); err != nil {
		return u.failed(c, "create_auction", stage, err), nil
	}

	stage = marketplace.TradeStageSubmitting
	listingId, txHash, err := u.marketplace.CreateAuction(c, &marketplace.CreateAuctionParams{
		Asset:          asset,
		Currency:       req.Currency.ToLower(),
		MinimumBidRaw:  minRaw,
		BuyoutPriceRaw: buyoutRaw,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	})
	if err != nil {
		return u.failed(c, "create_auction", stage, xerrors.Errorf("%s: %w", err.Error(), domain.ErrListingCreationFailed)), nil
	}

	u.metrics.BumpCount("create_auction", 1, "status", "confirmed")
	return marketplace.Confirmed(stage, listingId, txHash), nil
}

func (u *tradeUseCase) Buy(c bCtx.Ctx, asset domain.AssetId, buyer domain.Address) (*marketplace.TradeResult, error) {
	stage := marketplace.TradeStageValidating
	asset = asset.ToLower()
	buyer = buyer.ToLower()

	if buyer.IsEmpty() {
		return u.failed(c, "buy", stage, domain.ErrMissingField), nil
	}

	view, err := u.listing.GetCanonicalListing(c, asset)
	if err != nil {
		return u.failed(c, "buy", stage, err), nil
	}
	if !view.ForSale {
		return u.failed(c, "buy", stage, domain.ErrNoActiveListing), nil
	}

	stage = marketplace.TradeStageSubmitting
	listingId := view.Listing.Id()
	var txHash domain.TxHash
	switch view.Listing.Kind {
	case marketplace.ListingKindAuction:
		txHash, err = u.marketplace.BuyoutAuction(c, asset.ChainId, listingId)
	case marketplace.ListingKindDirect:
		total, ok := new(big.Int).SetString(view.Listing.Direct.PricePerToken, 10)
		if !ok {
			return u.failed(c, "buy", stage, domain.ErrInvalidNumberFormat), nil
		}
		txHash, err = u.marketplace.BuyFromListing(c, asset.ChainId, listingId, buyer, 1, view.Listing.Currency(), total)
	}
	if err != nil {
		return u.failed(c, "buy", stage, xerrors.Errorf("%s: %w", err.Error(), domain.ErrBuyTxFailed)), nil
	}

	u.metrics.BumpCount("buy", 1, "status", "confirmed")
	return marketplace.Confirmed(stage, listingId, txHash), nil
}

func (u *tradeUseCase) BidOrOffer(c bCtx.Ctx, asset domain.AssetId, bidder domain.Address, amount string) (*marketplace.TradeResult, error) {
	stage := marketplace.TradeStageValidating
	asset = asset.ToLower()
	bidder = bidder.ToLower()

	if bidder.IsEmpty() || amount == "" {
		return u.failed(c, "bid", stage, domain.ErrMissingField), nil
	}
	if err := checkAmount(amount); err != nil {
		return u.failed(c, "bid", stage, err), nil
	}

	view, err := u.listing.GetCanonicalListing(c, asset)
	if err != nil {
		return u.failed(c, "bid", stage, err), nil
	}
	if !view.ForSale {
		return u.failed(c, "bid", stage, domain.ErrNoActiveListing), nil
	}

	currency := view.Listing.Currency()
	raw, err := u.priceFormatter.ToRaw(c, asset.ChainId, currency, amount)
	if err != nil {
		return u.failed(c, "bid", stage, err), nil
	}

	stage = marketplace.TradeStageSubmitting
	listingId := view.Listing.Id()
	var txHash domain.TxHash
	switch view.Listing.Kind {
	case marketplace.ListingKindAuction:
		txHash, err = u.marketplace.BidInAuction(c, asset.ChainId, listingId, raw)
	case marketplace.ListingKindDirect:
		txHash, err = u.marketplace.MakeOffer(c, &marketplace.MakeOfferParams{
			Asset:          asset,
			Currency:       currency.ToLower(),
			TotalPriceRaw:  raw,
			ExpirationTime: time.Now().Add(offerValidity),
		})
	}
	if err != nil {
		return u.failed(c, "bid", stage, xerrors.Errorf("%s: %w", err.Error(), domain.ErrBidTxFailed)), nil
	}

	u.metrics.BumpCount("bid", 1, "status", "confirmed")
	return marketplace.Confirmed(stage, listingId, txHash), nil
}

func (u *tradeUseCase) failed(c bCtx.Ctx, action string, stage marketplace.TradeStage, reason error) *marketplace.TradeResult {
	c.WithFields(log.Fields{
		"action": action,
		"stage":  stage,
		"err":    reason,
	}).Error("trade failed")
	u.metrics.BumpCount(action, 1, "status", "failed")
	return marketplace.Failed(stage, reason)
}

func validateCreateAuction(req *marketplace.CreateAuctionRequest) error {
	if req.Asset.ContractAddress.IsEmpty() || req.Asset.TokenId == "" || req.Asset.ChainId == 0 {
		return domain.ErrMissingField
	}
	if req.Owner.IsEmpty() || req.MinimumBid == "" {
		return domain.ErrMissingField
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return domain.ErrMissingField
	}
	if req.StartTime.After(req.EndTime) {
		return domain.ErrBadParamInput
	}
	if err := checkAmount(req.MinimumBid); err != nil {
		return err
	}
	if req.BuyoutPrice != "" {
		if err := checkAmount(req.BuyoutPrice); err != nil {
			return err
		}
	}
	return nil
}

// checkAmount rejects non-numeric or negative amounts without touching
// the currency registry. Precision against the currency's decimals is
// still enforced by ToRaw.
func checkAmount(amount string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || d.IsNegative() {
		return domain.ErrInvalidAmount
	}
	return nil
}
