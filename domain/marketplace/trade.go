package marketplace

import (
	"time"

	"github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/domain"
)

// TradeStage is the step a user action was in when it reached a terminal
// state. Stages advance Idle -> Validating -> Gating -> Submitting and end
// in Confirmed or Failed.
type TradeStage string

const (
	TradeStageIdle       TradeStage = "idle"
	TradeStageValidating TradeStage = "validating"
	TradeStageGating     TradeStage = "gating"
	TradeStageSubmitting TradeStage = "submitting"
)

type TradeStatus string

const (
	TradeStatusConfirmed TradeStatus = "confirmed"
	TradeStatusFailed    TradeStatus = "failed"
)

// TradeResult is the single terminal report of one user action. Reason is
// nil iff Status is confirmed.
type TradeResult struct {
	Status    TradeStatus      `json:"status"`
	Stage     TradeStage       `json:"stage"`
	ListingId domain.ListingId `json:"listingId,omitempty"`
	TxHash    domain.TxHash    `json:"txHash,omitempty"`
	Reason    error            `json:"-"`
	ReasonMsg string           `json:"reason,omitempty"`
}

func Confirmed(stage TradeStage, listingId domain.ListingId, txHash domain.TxHash) *TradeResult {
	return &TradeResult{
		Status:    TradeStatusConfirmed,
		Stage:     stage,
		ListingId: listingId,
		TxHash:    txHash,
	}
}

func Failed(stage TradeStage, reason error) *TradeResult {
	return &TradeResult{
		Status:    TradeStatusFailed,
		Stage:     stage,
		Reason:    reason,
		ReasonMsg: reason.Error(),
	}
}

// CreateAuctionRequest holds the raw form values of the create listing
// flow. Prices are display strings and get validated before any chain
// call.
type CreateAuctionRequest struct {
	Asset       domain.AssetId `json:"asset"`
	Owner       domain.Address `json:"owner"`
	Currency    domain.Address `json:"currency"`
	MinimumBid  string         `json:"minimumBid"`
	BuyoutPrice string         `json:"buyoutPrice"`
	StartTime   time.Time      `json:"startTime"`
	EndTime     time.Time      `json:"endTime"`
}

// TradeUseCase sequences user actions against the marketplace. Mutations
// are strictly sequential within one call; nothing is retried, a failed
// call needs a new user attempt.
type TradeUseCase interface {
	// CreateAuction validates the request, gates on operator approval and
	// submits the auction creation. The result carries the new listing id.
	CreateAuction(c ctx.Ctx, req *CreateAuctionRequest) (*TradeResult, error)

	// Buy resolves the canonical listing and buys it: buyout for an
	// auction, a fixed price purchase of quantity one for a direct
	// listing.
	Buy(c ctx.Ctx, asset domain.AssetId, buyer domain.Address) (*TradeResult, error)

	// BidOrOffer places a bid when the canonical listing is an auction and
	// an offer when it is a direct listing. Amount is a display string.
	BidOrOffer(c ctx.Ctx, asset domain.AssetId, bidder domain.Address, amount string) (*TradeResult, error)
}
