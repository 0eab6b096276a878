package marketplace

import (
	"time"

	"github.com/x-xyz/marketgo/domain"
)

// DirectListing is a fixed price sale offer. Raw prices are smallest-unit
// integers carried as decimal strings, the same form the contract returns.
type DirectListing struct {
	Id            domain.ListingId `json:"id"`
	Asset         domain.AssetId   `json:"asset"`
	Owner         domain.Address   `json:"owner"`
	Currency      domain.Address   `json:"currency"`
	PricePerToken string           `json:"pricePerToken"`
	Quantity      string           `json:"quantity"`
	StartTime     *time.Time       `json:"startTime"`
	EndTime       *time.Time       `json:"endTime"`
}

// EnglishAuction is a time-bounded ascending-bid sale with a minimum bid
// and an optional buyout price.
type EnglishAuction struct {
	Id          domain.ListingId `json:"id"`
	Asset       domain.AssetId   `json:"asset"`
	Owner       domain.Address   `json:"owner"`
	Currency    domain.Address   `json:"currency"`
	MinimumBid  string           `json:"minimumBid"`
	BuyoutPrice string           `json:"buyoutPrice"`
	StartTime   *time.Time       `json:"startTime"`
	EndTime     *time.Time       `json:"endTime"`
}

type ListingKind string

const (
	ListingKindNone    ListingKind = "none"
	ListingKindDirect  ListingKind = "direct"
	ListingKindAuction ListingKind = "auction"
)

// CanonicalListing is the one listing surfaced for an asset. Kind none
// means the asset is not for sale, which is a valid terminal state.
type CanonicalListing struct {
	Kind    ListingKind     `json:"kind"`
	Direct  *DirectListing  `json:"direct,omitempty"`
	Auction *EnglishAuction `json:"auction,omitempty"`
}

func (c CanonicalListing) Id() domain.ListingId {
	switch c.Kind {
	case ListingKindDirect:
		return c.Direct.Id
	case ListingKindAuction:
		return c.Auction.Id
	}
	return ""
}

func (c CanonicalListing) Currency() domain.Address {
	switch c.Kind {
	case ListingKindDirect:
		return c.Direct.Currency
	case ListingKindAuction:
		return c.Auction.Currency
	}
	return ""
}

// PriceRaw returns the smallest-unit display price source: the per token
// price for a direct listing, the buyout price for an auction.
func (c CanonicalListing) PriceRaw() string {
	switch c.Kind {
	case ListingKindDirect:
		return c.Direct.PricePerToken
	case ListingKindAuction:
		return c.Auction.BuyoutPrice
	}
	return ""
}

// ResolveCanonical picks the canonical listing from the valid listing sets
// of one asset. Both inputs are already filtered for time window and fill
// state by the source of the query.
//
// An auction takes priority over a direct listing: an active bidding
// process is surfaced over a static price.
func ResolveCanonical(directs []DirectListing, auctions []EnglishAuction) CanonicalListing {
	if len(auctions) > 0 {
		return CanonicalListing{Kind: ListingKindAuction, Auction: &auctions[0]}
	}
	if len(directs) > 0 {
		return CanonicalListing{Kind: ListingKindDirect, Direct: &directs[0]}
	}
	return CanonicalListing{Kind: ListingKindNone}
}

// CanonicalListingView is the resolver output handed to consumers. When
// ForSale is false DisplayPrice and CurrencySymbol are empty.
type CanonicalListingView struct {
	Listing        CanonicalListing `json:"listing"`
	ForSale        bool             `json:"forSale"`
	DisplayPrice   string           `json:"displayPrice"`
	CurrencySymbol string           `json:"currencySymbol"`
}
