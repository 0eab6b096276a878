package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	pricefomatterMocks "github.com/x-xyz/marketgo/base/price_fomatter/mocks"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
	marketplaceMocks "github.com/x-xyz/marketgo/domain/marketplace/mocks"
)

type listingTestSuite struct {
	suite.Suite

	marketplace    *marketplaceMocks.Marketplace
	priceFormatter *pricefomatterMocks.PriceFormatter
	uc             marketplace.ListingUseCase

	asset domain.AssetId
}

func TestListing(t *testing.T) {
	suite.Run(t, new(listingTestSuite))
}

func (s *listingTestSuite) SetupTest() {
	s.marketplace = &marketplaceMocks.Marketplace{}
	s.priceFormatter = &pricefomatterMocks.PriceFormatter{}
	s.uc = NewListingUseCase(&ListingUseCaseCfg{
		Marketplace:    s.marketplace,
		PriceFormatter: s.priceFormatter,
	})
	s.asset = domain.AssetId{
		ChainId:         1,
		ContractAddress: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		TokenId:         "42",
	}
}

func (s *listingTestSuite) direct() marketplace.DirectListing {
	return marketplace.DirectListing{
		Id:            "7",
		Asset:         s.asset,
		Owner:         "0x1111111111111111111111111111111111111111",
		Currency:      "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		PricePerToken: "1500000000000000000",
		Quantity:      "1",
	}
}

func (s *listingTestSuite) auction() marketplace.EnglishAuction {
	return marketplace.EnglishAuction{
		Id:          "9",
		Asset:       s.asset,
		Owner:       "0x1111111111111111111111111111111111111111",
		Currency:    "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		MinimumBid:  "1000000000000000000",
		BuyoutPrice: "2000000000000000000",
	}
}

func (s *listingTestSuite) TestAuctionWinsOverDirect() {
	ctx := bCtx.Background()
	s.marketplace.On("GetValidDirectListings", mock.Anything, s.asset).Return([]marketplace.DirectListing{s.direct()}, nil)
	s.marketplace.On("GetValidEnglishAuctions", mock.Anything, s.asset).Return([]marketplace.EnglishAuction{s.auction()}, nil)
	s.priceFormatter.On("ToDisplay", mock.Anything, domain.ChainId(1), domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), big.NewInt(2000000000000000000)).Return("2", "WETH", nil)

	view, err := s.uc.GetCanonicalListing(ctx, s.asset)
	s.Require().NoError(err)
	s.Equal(marketplace.ListingKindAuction, view.Listing.Kind)
	s.True(view.ForSale)
	s.Equal("2", view.DisplayPrice)
	s.Equal("WETH", view.CurrencySymbol)
	s.Equal(domain.ListingId("9"), view.Listing.Id())
}

func (s *listingTestSuite) TestDirectOnly() {
	ctx := bCtx.Background()
	s.marketplace.On("GetValidDirectListings", mock.Anything, s.asset).Return([]marketplace.DirectListing{s.direct()}, nil)
	s.marketplace.On("GetValidEnglishAuctions", mock.Anything, s.asset).Return([]marketplace.EnglishAuction{}, nil)
	s.priceFormatter.On("ToDisplay", mock.Anything, domain.ChainId(1), domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), big.NewInt(1500000000000000000)).Return("1.5", "WETH", nil)

	view, err := s.uc.GetCanonicalListing(ctx, s.asset)
	s.Require().NoError(err)
	s.Equal(marketplace.ListingKindDirect, view.Listing.Kind)
	s.True(view.ForSale)
	s.Equal("1.5", view.DisplayPrice)
}

func (s *listingTestSuite) TestNotForSale() {
	ctx := bCtx.Background()
	s.marketplace.On("GetValidDirectListings", mock.Anything, s.asset).Return([]marketplace.DirectListing{}, nil)
	s.marketplace.On("GetValidEnglishAuctions", mock.Anything, s.asset).Return([]marketplace.EnglishAuction{}, nil)

	view, err := s.uc.GetCanonicalListing(ctx, s.asset)
	s.Require().NoError(err)
	s.Equal(marketplace.ListingKindNone, view.Listing.Kind)
	s.False(view.ForSale)
	s.Empty(view.DisplayPrice)
	s.priceFormatter.AssertNotCalled(s.T(), "ToDisplay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingTestSuite) TestQueryFailure() {
	ctx := bCtx.Background()
	queryErr := errors.New("rpc down")
	s.marketplace.On("GetValidDirectListings", mock.Anything, s.asset).Return(nil, queryErr)

	view, err := s.uc.GetCanonicalListing(ctx, s.asset)
	s.Require().Error(err)
	s.Nil(view)
}

func (s *listingTestSuite) TestFormatterFailureKeepsListing() {
	ctx := bCtx.Background()
	s.marketplace.On("GetValidDirectListings", mock.Anything, s.asset).Return([]marketplace.DirectListing{s.direct()}, nil)
	s.marketplace.On("GetValidEnglishAuctions", mock.Anything, s.asset).Return([]marketplace.EnglishAuction{}, nil)
	s.priceFormatter.On("ToDisplay", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", "", errors.New("unknown currency"))

	view, err := s.uc.GetCanonicalListing(ctx, s.asset)
	s.Require().NoError(err)
	s.True(view.ForSale)
	s.Empty(view.DisplayPrice)
	s.Empty(view.CurrencySymbol)
}
