package pricefomatter

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/domain"
	domainMocks "github.com/x-xyz/marketgo/domain/mocks"
)

type implTestSuite struct {
	suite.Suite

	currencies *domainMocks.CurrencyRegistry
	formatter  PriceFormatter
}

func TestImpl(t *testing.T) {
	suite.Run(t, new(implTestSuite))
}

func (s *implTestSuite) SetupTest() {
	s.currencies = &domainMocks.CurrencyRegistry{}
	s.formatter = NewPriceFormatter(&PriceFormatterCfg{
		Currencies: s.currencies,
	})
}

func (s *implTestSuite) weth() *domain.Currency {
	return &domain.Currency{
		ChainId:  1,
		Address:  "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2",
		Symbol:   "WETH",
		Decimals: 18,
	}
}

func (s *implTestSuite) TestToDisplay() {
	ctx := bCtx.Background()
	s.currencies.On("Get", mock.Anything, domain.ChainId(1), mock.Anything).Return(s.weth(), nil)

	raw, _ := new(big.Int).SetString("1500000000000000000", 10)
	display, symbol, err := s.formatter.ToDisplay(ctx, 1, s.weth().Address, raw)
	s.Require().NoError(err)
	s.Equal("1.5", display)
	s.Equal("WETH", symbol)
}

func (s *implTestSuite) TestToRaw() {
	ctx := bCtx.Background()
	s.currencies.On("Get", mock.Anything, domain.ChainId(1), mock.Anything).Return(s.weth(), nil)

	raw, err := s.formatter.ToRaw(ctx, 1, s.weth().Address, "0.00025")
	s.Require().NoError(err)
	s.Equal("250000000000000", raw.String())
}

func (s *implTestSuite) TestCurrencyIsMemoized() {
	ctx := bCtx.Background()
	s.currencies.On("Get", mock.Anything, domain.ChainId(1), mock.Anything).Return(s.weth(), nil)

	for i := 0; i < 3; i++ {
		_, _, err := s.formatter.ToDisplay(ctx, 1, s.weth().Address, big.NewInt(1))
		s.Require().NoError(err)
	}
	s.currencies.AssertNumberOfCalls(s.T(), "Get", 1)
}

func (s *implTestSuite) TestRegistryFailure() {
	ctx := bCtx.Background()
	s.currencies.On("Get", mock.Anything, domain.ChainId(1), mock.Anything).Return(nil, errors.New("unknown token"))

	_, _, err := s.formatter.ToDisplay(ctx, 1, "0x1234567890123456789012345678901234567890", big.NewInt(1))
	s.Require().Error(err)

	_, err = s.formatter.ToRaw(ctx, 1, "0x1234567890123456789012345678901234567890", "1")
	s.Require().Error(err)
}
