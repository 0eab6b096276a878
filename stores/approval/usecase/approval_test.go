package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
	marketplaceMocks "github.com/x-xyz/marketgo/domain/marketplace/mocks"
	"github.com/x-xyz/marketgo/service/chain"
	"golang.org/x/xerrors"
)

type approvalTestSuite struct {
	suite.Suite

	collection *marketplaceMocks.CollectionContract
	uc         marketplace.ApprovalUseCase

	asset    domain.AssetId
	owner    domain.Address
	operator domain.Address
}

func TestApproval(t *testing.T) {
	suite.Run(t, new(approvalTestSuite))
}

func (s *approvalTestSuite) SetupTest() {
	s.collection = &marketplaceMocks.CollectionContract{}
	s.asset = domain.AssetId{
		ChainId:         1,
		ContractAddress: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		TokenId:         "42",
	}
	s.owner = "0x1111111111111111111111111111111111111111"
	s.operator = "0x9999999999999999999999999999999999999999"
	s.uc = NewApprovalUseCase(&ApprovalUseCaseCfg{
		Collection: s.collection,
		Operators: map[domain.ChainId]domain.Address{
			1: s.operator,
		},
	})
}

func (s *approvalTestSuite) TestAlreadyGrantedSubmitsNothing() {
	ctx := bCtx.Background()
	s.collection.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), s.asset.ContractAddress, s.owner, s.operator).Return(true, nil)

	status, err := s.uc.EnsureApproval(ctx, s.asset, s.owner)
	s.Require().NoError(err)
	s.True(status.Granted)
	s.False(status.TxSubmitted)
	s.Empty(status.TxHash)
	s.collection.AssertNotCalled(s.T(), "SetApprovalForAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *approvalTestSuite) TestGrantsWhenAbsent() {
	ctx := bCtx.Background()
	s.collection.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), s.asset.ContractAddress, s.owner, s.operator).Return(false, nil)
	s.collection.On("SetApprovalForAll", mock.Anything, domain.ChainId(1), s.asset.ContractAddress, s.operator, true).Return(domain.TxHash("0xabc"), nil).Once()

	status, err := s.uc.EnsureApproval(ctx, s.asset, s.owner)
	s.Require().NoError(err)
	s.True(status.Granted)
	s.True(status.TxSubmitted)
	s.Equal(domain.TxHash("0xabc"), status.TxHash)
	s.collection.AssertNumberOfCalls(s.T(), "SetApprovalForAll", 1)
}

func (s *approvalTestSuite) TestReadFailure() {
	ctx := bCtx.Background()
	s.collection.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), s.asset.ContractAddress, s.owner, s.operator).Return(false, errors.New("rpc down"))

	status, err := s.uc.EnsureApproval(ctx, s.asset, s.owner)
	s.Require().ErrorIs(err, domain.ErrApprovalReadFailed)
	s.Nil(status)
	s.collection.AssertNotCalled(s.T(), "SetApprovalForAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *approvalTestSuite) TestSubmitRejected() {
	ctx := bCtx.Background()
	s.collection.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), s.asset.ContractAddress, s.owner, s.operator).Return(false, nil)
	s.collection.On("SetApprovalForAll", mock.Anything, domain.ChainId(1), s.asset.ContractAddress, s.operator, true).Return(domain.TxHash(""), errors.New("nonce too low"))

	status, err := s.uc.EnsureApproval(ctx, s.asset, s.owner)
	s.Require().ErrorIs(err, domain.ErrApprovalTxRejected)
	s.Nil(status)
}

func (s *approvalTestSuite) TestSubmitReverted() {
	ctx := bCtx.Background()
	s.collection.On("IsApprovedForAll", mock.Anything, domain.ChainId(1), s.asset.ContractAddress, s.owner, s.operator).Return(false, nil)
	s.collection.On("SetApprovalForAll", mock.Anything, domain.ChainId(1), s.asset.ContractAddress, s.operator, true).Return(domain.TxHash(""), xerrors.Errorf("wait mined: %w", chain.ErrTxReverted))

	status, err := s.uc.EnsureApproval(ctx, s.asset, s.owner)
	s.Require().ErrorIs(err, domain.ErrApprovalTxReverted)
	s.Nil(status)
}

func (s *approvalTestSuite) TestUnknownChain() {
	ctx := bCtx.Background()
	asset := s.asset
	asset.ChainId = 250

	status, err := s.uc.EnsureApproval(ctx, asset, s.owner)
	s.Require().ErrorIs(err, domain.ErrInvalidChainId)
	s.Nil(status)
}
