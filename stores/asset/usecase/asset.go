package usecase

import (
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/goroutine"
	"github.com/x-xyz/marketgo/base/log"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
)

type AssetUseCaseCfg struct {
	Listing marketplace.ListingUseCase
	History marketplace.HistoryUseCase
}

type assetUseCase struct {
	listing marketplace.ListingUseCase
	history marketplace.HistoryUseCase
}

func NewAssetUseCase(cfg *AssetUseCaseCfg) marketplace.AssetUseCase {
	return &assetUseCase{
		listing: cfg.Listing,
		history: cfg.History,
	}
}

// GetSaleState loads the listing and the timeline concurrently. Either
// part may fail on its own; the view carries per part errors so a
// consumer can render what did load.
func (u *assetUseCase) GetSaleState(c bCtx.Ctx, asset domain.AssetId) (*marketplace.SaleStateView, error) {
	asset = asset.ToLower()
	view := &marketplace.SaleStateView{
		Asset:    asset,
		Timeline: []marketplace.TimelineEntry{},
	}

	listingDone := goroutine.RecoverableGo(func() {
		listing, err := u.listing.GetCanonicalListing(c, asset)
		if err != nil {
			view.ListingErr = err.Error()
			return
		}
		view.Listing = listing
	})
	historyDone := goroutine.RecoverableGo(func() {
		timeline, err := u.history.GetTimeline(c, asset)
		if err != nil {
			view.TimelineErr = err.Error()
			return
		}
		view.Timeline = timeline
	})

	if events := goroutine.Join(listingDone, historyDone); len(events) > 0 {
		c.WithFields(log.Fields{
			"asset": asset,
		}).Error("sale state loader panicked")
		return nil, domain.ErrInternalServerError
	}

	select {
	case <-c.Done():
		// caller went away, results are discarded
		return nil, c.Err()
	default:
	}

	return view, nil
}
