package marketplace

import (
	"math/big"
	"time"

	"github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/domain"
)

// CreateAuctionParams carries validated, raw-unit values for the
// createAuction call.
type CreateAuctionParams struct {
	Asset          domain.AssetId
	Currency       domain.Address
	MinimumBidRaw  *big.Int
	BuyoutPriceRaw *big.Int
	StartTime      time.Time
	EndTime        time.Time
}

// MakeOfferParams carries validated, raw-unit values for an offer against
// a direct listing.
type MakeOfferParams struct {
	Asset          domain.AssetId
	Currency       domain.Address
	TotalPriceRaw  *big.Int
	ExpirationTime time.Time
}

// Marketplace is the marketplace contract boundary. Query results are
// already filtered to valid, active listings of the requested asset by the
// contract's view functions. Mutating calls resolve once the transaction
// is mined, or fail with the submission or revert reason.
type Marketplace interface {
	GetValidDirectListings(c ctx.Ctx, asset domain.AssetId) ([]DirectListing, error)
	GetValidEnglishAuctions(c ctx.Ctx, asset domain.AssetId) ([]EnglishAuction, error)

	CreateAuction(c ctx.Ctx, params *CreateAuctionParams) (domain.ListingId, domain.TxHash, error)
	BuyFromListing(c ctx.Ctx, chainId domain.ChainId, listingId domain.ListingId, buyer domain.Address, quantity int64, currency domain.Address, totalPriceRaw *big.Int) (domain.TxHash, error)
	BuyoutAuction(c ctx.Ctx, chainId domain.ChainId, auctionId domain.ListingId) (domain.TxHash, error)
	BidInAuction(c ctx.Ctx, chainId domain.ChainId, auctionId domain.ListingId, amountRaw *big.Int) (domain.TxHash, error)
	MakeOffer(c ctx.Ctx, params *MakeOfferParams) (domain.TxHash, error)

	// BidEvents returns decoded NewBid logs of the marketplace in the log
	// order of the node, newest first.
	BidEvents(c ctx.Ctx, asset domain.AssetId) ([]BidEvent, error)
}

// CollectionContract is the asset collection contract boundary, used for
// operator approval and transfer history.
type CollectionContract interface {
	IsApprovedForAll(c ctx.Ctx, chainId domain.ChainId, collection, owner, operator domain.Address) (bool, error)
	SetApprovalForAll(c ctx.Ctx, chainId domain.ChainId, collection, operator domain.Address, approved bool) (domain.TxHash, error)
	OwnerOf(c ctx.Ctx, asset domain.AssetId) (domain.Address, error)

	// TransferEvents returns decoded Transfer logs of one asset in the log
	// order of the node, newest first.
	TransferEvents(c ctx.Ctx, asset domain.AssetId) ([]TransferEvent, error)
}

// ListingUseCase resolves the canonical listing and its display price
type ListingUseCase interface {
	GetCanonicalListing(c ctx.Ctx, asset domain.AssetId) (*CanonicalListingView, error)
}

// HistoryUseCase reconstructs the asset scoped event timeline
type HistoryUseCase interface {
	GetTimeline(c ctx.Ctx, asset domain.AssetId) ([]TimelineEntry, error)
}

// SaleStateView aggregates the independently loaded parts of an asset
// page. Each part carries its own error so consumers can render partial
// results without blocking on the slowest query.
type SaleStateView struct {
	Asset       domain.AssetId        `json:"asset"`
	Listing     *CanonicalListingView `json:"listing,omitempty"`
	ListingErr  string                `json:"listingErr,omitempty"`
	Timeline    []TimelineEntry       `json:"timeline"`
	TimelineErr string                `json:"timelineErr,omitempty"`
}

// AssetUseCase composes the read side of one asset
type AssetUseCase interface {
	GetSaleState(c ctx.Ctx, asset domain.AssetId) (*SaleStateView, error)
}
