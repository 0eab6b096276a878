package marketplace

import (
	"sort"

	"github.com/x-xyz/marketgo/domain"
)

// TransferEvent is one decoded Transfer log of the collection contract.
// A transfer whose From is the zero address is a mint.
type TransferEvent struct {
	Asset       domain.AssetId     `json:"asset"`
	From        domain.Address     `json:"from"`
	To          domain.Address     `json:"to"`
	TxHash      domain.TxHash      `json:"txHash"`
	BlockNumber domain.BlockNumber `json:"blockNumber"`
	LogIndex    uint               `json:"logIndex"`
}

// BidEvent is one decoded NewBid log of the marketplace contract.
// AmountRaw is a non-negative smallest-unit integer in decimal form.
type BidEvent struct {
	Asset       domain.AssetId     `json:"asset"`
	Bidder      domain.Address     `json:"bidder"`
	Currency    domain.Address     `json:"currency"`
	AmountRaw   string             `json:"amountRaw"`
	TxHash      domain.TxHash      `json:"txHash"`
	BlockNumber domain.BlockNumber `json:"blockNumber"`
	LogIndex    uint               `json:"logIndex"`
}

type TimelineEntryType string

const (
	TimelineEntryTypeMint     TimelineEntryType = "mint"
	TimelineEntryTypeTransfer TimelineEntryType = "transfer"
	TimelineEntryTypeBid      TimelineEntryType = "bid"
)

// TimelineEntry is one reconstructed historical event of an asset,
// ordered for display.
type TimelineEntry struct {
	Type           TimelineEntryType  `json:"type"`
	Asset          domain.AssetId     `json:"asset"`
	From           domain.Address     `json:"from,omitempty"`
	To             domain.Address     `json:"to,omitempty"`
	Bidder         domain.Address     `json:"bidder,omitempty"`
	AmountRaw      string             `json:"amountRaw,omitempty"`
	DisplayAmount  string             `json:"displayAmount,omitempty"`
	CurrencySymbol string             `json:"currencySymbol,omitempty"`
	TxHash         domain.TxHash      `json:"txHash"`
	BlockNumber    domain.BlockNumber `json:"blockNumber"`
	LogIndex       uint               `json:"logIndex"`
}

// AmountFormatter converts a raw bid amount of a given currency into its
// display form and symbol. A nil formatter leaves display fields empty.
type AmountFormatter func(currency domain.Address, amountRaw string) (display string, symbol string)

// BuildTimeline merges the transfer and bid streams of one asset into a
// single display ordered history. Events of other assets are dropped on
// exact asset match. Ordering is descending by block then log index, ties
// keep input order. Empty inputs yield an empty timeline.
func BuildTimeline(asset domain.AssetId, transfers []TransferEvent, bids []BidEvent, format AmountFormatter) []TimelineEntry {
	entries := []TimelineEntry{}

	for _, ev := range transfers {
		if !ev.Asset.Equals(asset) {
			continue
		}
		typ := TimelineEntryTypeTransfer
		if ev.From.IsEmpty() {
			typ = TimelineEntryTypeMint
		}
		entries = append(entries, TimelineEntry{
			Type:        typ,
			Asset:       ev.Asset,
			From:        ev.From,
			To:          ev.To,
			TxHash:      ev.TxHash,
			BlockNumber: ev.BlockNumber,
			LogIndex:    ev.LogIndex,
		})
	}

	for _, ev := range bids {
		if !ev.Asset.Equals(asset) {
			continue
		}
		entry := TimelineEntry{
			Type:        TimelineEntryTypeBid,
			Asset:       ev.Asset,
			Bidder:      ev.Bidder,
			AmountRaw:   ev.AmountRaw,
			TxHash:      ev.TxHash,
			BlockNumber: ev.BlockNumber,
			LogIndex:    ev.LogIndex,
		}
		if format != nil {
			entry.DisplayAmount, entry.CurrencySymbol = format(ev.Currency, ev.AmountRaw)
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].BlockNumber != entries[j].BlockNumber {
			return entries[i].BlockNumber > entries[j].BlockNumber
		}
		return entries[i].LogIndex > entries[j].LogIndex
	})

	return entries
}
