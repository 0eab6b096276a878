package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	pricefomatterMocks "github.com/x-xyz/marketgo/base/price_fomatter/mocks"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
	marketplaceMocks "github.com/x-xyz/marketgo/domain/marketplace/mocks"
)

type tradeTestSuite struct {
	suite.Suite

	marketplace    *marketplaceMocks.Marketplace
	collection     *marketplaceMocks.CollectionContract
	listing        *marketplaceMocks.ListingUseCase
	approval       *marketplaceMocks.ApprovalUseCase
	priceFormatter *pricefomatterMocks.PriceFormatter
	uc             marketplace.TradeUseCase

	asset domain.AssetId
	buyer domain.Address
	owner domain.Address
}

func TestTrade(t *testing.T) {
	suite.Run(t, new(tradeTestSuite))
}

func (s *tradeTestSuite) SetupTest() {
	s.marketplace = &marketplaceMocks.Marketplace{}
	s.collection = &marketplaceMocks.CollectionContract{}
	s.listing = &marketplaceMocks.ListingUseCase{}
	s.approval = &marketplaceMocks.ApprovalUseCase{}
	s.priceFormatter = &pricefomatterMocks.PriceFormatter{}
	s.uc = NewTradeUseCase(&TradeUseCaseCfg{
		Marketplace:    s.marketplace,
		Collection:     s.collection,
		Listing:        s.listing,
		Approval:       s.approval,
		PriceFormatter: s.priceFormatter,
	})
	s.asset = domain.AssetId{
		ChainId:         1,
		ContractAddress: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		TokenId:         "42",
	}
	s.buyer = "0x2222222222222222222222222222222222222222"
	s.owner = "0x1111111111111111111111111111111111111111"
}

func (s *tradeTestSuite) directView() *marketplace.CanonicalListingView {
	return &marketplace.CanonicalListingView{
		Listing: marketplace.CanonicalListing{
			Kind: marketplace.ListingKindDirect,
			Direct: &marketplace.DirectListing{
				Id:            "7",
				Asset:         s.asset,
				Owner:         s.owner,
				Currency:      "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
				PricePerToken: "1500000000000000000",
				Quantity:      "1",
			},
		},
		ForSale: true,
	}
}

func (s *tradeTestSuite) auctionView() *marketplace.CanonicalListingView {
	return &marketplace.CanonicalListingView{
		Listing: marketplace.CanonicalListing{
			Kind: marketplace.ListingKindAuction,
			Auction: &marketplace.EnglishAuction{
				Id:          "9",
				Asset:       s.asset,
				Owner:       s.owner,
				Currency:    "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
				MinimumBid:  "1000000000000000000",
				BuyoutPrice: "2000000000000000000",
			},
		},
		ForSale: true,
	}
}

func (s *tradeTestSuite) noneView() *marketplace.CanonicalListingView {
	return &marketplace.CanonicalListingView{
		Listing: marketplace.CanonicalListing{Kind: marketplace.ListingKindNone},
	}
}

func (s *tradeTestSuite) createAuctionRequest() *marketplace.CreateAuctionRequest {
	now := time.Now()
	return &marketplace.CreateAuctionRequest{
		Asset:       s.asset,
		Owner:       s.owner,
		Currency:    "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		MinimumBid:  "1",
		BuyoutPrice: "2",
		StartTime:   now,
		EndTime:     now.Add(24 * time.Hour),
	}
}

func (s *tradeTestSuite) TestCreateAuctionGatesBeforeSubmitting() {
	ctx := bCtx.Background()
	req := s.createAuctionRequest()
	approved := false

	s.collection.On("OwnerOf", mock.Anything, s.asset).Return(s.owner, nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), req.Currency, "1").Return(big.NewInt(1000000000000000000), nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), req.Currency, "2").Return(big.NewInt(2000000000000000000), nil)
	s.approval.On("EnsureApproval", mock.Anything, s.asset, s.owner).Run(func(mock.Arguments) {
		approved = true
	}).Return(&marketplace.ApprovalStatus{Granted: true}, nil).Once()
	s.marketplace.On("CreateAuction", mock.Anything, mock.MatchedBy(func(p *marketplace.CreateAuctionParams) bool {
		return approved && p.Asset.Equals(s.asset) && p.MinimumBidRaw.Cmp(big.NewInt(1000000000000000000)) == 0
	})).Return(domain.ListingId("11"), domain.TxHash("0xdef"), nil).Once()

	res, err := s.uc.CreateAuction(ctx, req)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusConfirmed, res.Status)
	s.Equal(marketplace.TradeStageSubmitting, res.Stage)
	s.Equal(domain.ListingId("11"), res.ListingId)
	s.Equal(domain.TxHash("0xdef"), res.TxHash)
}

func (s *tradeTestSuite) TestCreateAuctionInvalidPrice() {
	ctx := bCtx.Background()
	req := s.createAuctionRequest()
	req.MinimumBid = "abc"

	res, err := s.uc.CreateAuction(ctx, req)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Equal(marketplace.TradeStageValidating, res.Stage)
	s.Require().ErrorIs(res.Reason, domain.ErrInvalidAmount)
	s.collection.AssertNotCalled(s.T(), "OwnerOf", mock.Anything, mock.Anything)
	s.priceFormatter.AssertNotCalled(s.T(), "ToRaw", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.approval.AssertNotCalled(s.T(), "EnsureApproval", mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "CreateAuction", mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestCreateAuctionInvalidBuyoutPrice() {
	ctx := bCtx.Background()
	req := s.createAuctionRequest()
	req.BuyoutPrice = "-2"

	res, err := s.uc.CreateAuction(ctx, req)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Equal(marketplace.TradeStageValidating, res.Stage)
	s.Require().ErrorIs(res.Reason, domain.ErrInvalidAmount)
	s.collection.AssertNotCalled(s.T(), "OwnerOf", mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestCreateAuctionBadTimeWindow() {
	ctx := bCtx.Background()
	req := s.createAuctionRequest()
	req.StartTime = req.EndTime.Add(time.Hour)

	res, err := s.uc.CreateAuction(ctx, req)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Require().ErrorIs(res.Reason, domain.ErrBadParamInput)
}

func (s *tradeTestSuite) TestCreateAuctionNotOwner() {
	ctx := bCtx.Background()
	req := s.createAuctionRequest()

	s.collection.On("OwnerOf", mock.Anything, s.asset).Return(domain.Address("0x9999999999999999999999999999999999999999"), nil)

	res, err := s.uc.CreateAuction(ctx, req)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Equal(marketplace.TradeStageValidating, res.Stage)
	s.Require().ErrorIs(res.Reason, domain.ErrNotTokenOwner)
	s.approval.AssertNotCalled(s.T(), "EnsureApproval", mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "CreateAuction", mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestCreateAuctionApprovalFailureStopsFlow() {
	ctx := bCtx.Background()
	req := s.createAuctionRequest()

	s.collection.On("OwnerOf", mock.Anything, s.asset).Return(s.owner, nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), req.Currency, "1").Return(big.NewInt(1), nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), req.Currency, "2").Return(big.NewInt(2), nil)
	s.approval.On("EnsureApproval", mock.Anything, s.asset, s.owner).Return(nil, domain.ErrApprovalTxRejected)

	res, err := s.uc.CreateAuction(ctx, req)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Equal(marketplace.TradeStageGating, res.Stage)
	s.Require().ErrorIs(res.Reason, domain.ErrApprovalTxRejected)
	s.marketplace.AssertNotCalled(s.T(), "CreateAuction", mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestCreateAuctionSubmitFailure() {
	ctx := bCtx.Background()
	req := s.createAuctionRequest()

	s.collection.On("OwnerOf", mock.Anything, s.asset).Return(s.owner, nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), req.Currency, "1").Return(big.NewInt(1), nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), req.Currency, "2").Return(big.NewInt(2), nil)
	s.approval.On("EnsureApproval", mock.Anything, s.asset, s.owner).Return(&marketplace.ApprovalStatus{Granted: true}, nil)
	s.marketplace.On("CreateAuction", mock.Anything, mock.Anything).Return(domain.ListingId(""), domain.TxHash(""), errors.New("reverted"))

	res, err := s.uc.CreateAuction(ctx, req)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Equal(marketplace.TradeStageSubmitting, res.Stage)
	s.Require().ErrorIs(res.Reason, domain.ErrListingCreationFailed)
}

func (s *tradeTestSuite) TestBuyDirectListing() {
	ctx := bCtx.Background()
	s.listing.On("GetCanonicalListing", mock.Anything, s.asset).Return(s.directView(), nil)
	s.marketplace.On("BuyFromListing", mock.Anything, domain.ChainId(1), domain.ListingId("7"), s.buyer, int64(1), domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), big.NewInt(1500000000000000000)).Return(domain.TxHash("0xaaa"), nil).Once()

	res, err := s.uc.Buy(ctx, s.asset, s.buyer)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusConfirmed, res.Status)
	s.Equal(domain.ListingId("7"), res.ListingId)
	s.Equal(domain.TxHash("0xaaa"), res.TxHash)
}

func (s *tradeTestSuite) TestBuyAuctionUsesBuyout() {
	ctx := bCtx.Background()
	s.listing.On("GetCanonicalListing", mock.Anything, s.asset).Return(s.auctionView(), nil)
	s.marketplace.On("BuyoutAuction", mock.Anything, domain.ChainId(1), domain.ListingId("9")).Return(domain.TxHash("0xbbb"), nil).Once()

	res, err := s.uc.Buy(ctx, s.asset, s.buyer)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusConfirmed, res.Status)
	s.Equal(domain.ListingId("9"), res.ListingId)
	s.marketplace.AssertNotCalled(s.T(), "BuyFromListing", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestBuyNotForSaleSubmitsNothing() {
	ctx := bCtx.Background()
	s.listing.On("GetCanonicalListing", mock.Anything, s.asset).Return(s.noneView(), nil)

	res, err := s.uc.Buy(ctx, s.asset, s.buyer)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Equal(marketplace.TradeStageValidating, res.Stage)
	s.Require().ErrorIs(res.Reason, domain.ErrNoActiveListing)
	s.marketplace.AssertNotCalled(s.T(), "BuyoutAuction", mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "BuyFromListing", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestBuySubmitFailure() {
	ctx := bCtx.Background()
	s.listing.On("GetCanonicalListing", mock.Anything, s.asset).Return(s.auctionView(), nil)
	s.marketplace.On("BuyoutAuction", mock.Anything, domain.ChainId(1), domain.ListingId("9")).Return(domain.TxHash(""), errors.New("reverted"))

	res, err := s.uc.Buy(ctx, s.asset, s.buyer)
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Equal(marketplace.TradeStageSubmitting, res.Stage)
	s.Require().ErrorIs(res.Reason, domain.ErrBuyTxFailed)
}

func (s *tradeTestSuite) TestBidInAuction() {
	ctx := bCtx.Background()
	s.listing.On("GetCanonicalListing", mock.Anything, s.asset).Return(s.auctionView(), nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), "1.2").Return(big.NewInt(1200000000000000000), nil)
	s.marketplace.On("BidInAuction", mock.Anything, domain.ChainId(1), domain.ListingId("9"), big.NewInt(1200000000000000000)).Return(domain.TxHash("0xccc"), nil).Once()

	res, err := s.uc.BidOrOffer(ctx, s.asset, s.buyer, "1.2")
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusConfirmed, res.Status)
	s.Equal(domain.ListingId("9"), res.ListingId)
}

func (s *tradeTestSuite) TestOfferOnDirectListing() {
	ctx := bCtx.Background()
	s.listing.On("GetCanonicalListing", mock.Anything, s.asset).Return(s.directView(), nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), "1.2").Return(big.NewInt(1200000000000000000), nil)
	s.marketplace.On("MakeOffer", mock.Anything, mock.MatchedBy(func(p *marketplace.MakeOfferParams) bool {
		return p.Asset.Equals(s.asset) && p.TotalPriceRaw.Cmp(big.NewInt(1200000000000000000)) == 0 && !p.ExpirationTime.IsZero()
	})).Return(domain.TxHash("0xddd"), nil).Once()

	res, err := s.uc.BidOrOffer(ctx, s.asset, s.buyer, "1.2")
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusConfirmed, res.Status)
	s.marketplace.AssertNotCalled(s.T(), "BidInAuction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestBidInvalidAmount() {
	ctx := bCtx.Background()

	for _, amount := range []string{"abc", "-1", "1..2"} {
		res, err := s.uc.BidOrOffer(ctx, s.asset, s.buyer, amount)
		s.Require().NoError(err)
		s.Equal(marketplace.TradeStatusFailed, res.Status)
		s.Equal(marketplace.TradeStageValidating, res.Stage)
		s.Require().ErrorIs(res.Reason, domain.ErrInvalidAmount)
	}
	s.listing.AssertNotCalled(s.T(), "GetCanonicalListing", mock.Anything, mock.Anything)
	s.priceFormatter.AssertNotCalled(s.T(), "ToRaw", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.marketplace.AssertNotCalled(s.T(), "BidInAuction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestBidExcessPrecision() {
	ctx := bCtx.Background()
	s.listing.On("GetCanonicalListing", mock.Anything, s.asset).Return(s.auctionView(), nil)
	s.priceFormatter.On("ToRaw", mock.Anything, domain.ChainId(1), domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), "0.0000000000000000001").Return(nil, domain.ErrInvalidAmount)

	res, err := s.uc.BidOrOffer(ctx, s.asset, s.buyer, "0.0000000000000000001")
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Equal(marketplace.TradeStageValidating, res.Stage)
	s.Require().ErrorIs(res.Reason, domain.ErrInvalidAmount)
	s.marketplace.AssertNotCalled(s.T(), "BidInAuction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *tradeTestSuite) TestBidNoActiveListing() {
	ctx := bCtx.Background()
	s.listing.On("GetCanonicalListing", mock.Anything, s.asset).Return(s.noneView(), nil)

	res, err := s.uc.BidOrOffer(ctx, s.asset, s.buyer, "1.2")
	s.Require().NoError(err)
	s.Equal(marketplace.TradeStatusFailed, res.Status)
	s.Require().ErrorIs(res.Reason, domain.ErrNoActiveListing)
}
