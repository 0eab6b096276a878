package contract

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/marketgo/base/abi"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	"github.com/x-xyz/marketgo/base/ptr"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
	"github.com/x-xyz/marketgo/service/chain"
)

// MarketplaceCfg binds the adapter to the deployed marketplace contracts
type MarketplaceCfg struct {
	Addresses map[domain.ChainId]domain.Address
}

// Marketplace adapts the marketplace contract to the domain boundary. It
// implements marketplace.Marketplace.
type Marketplace struct {
	chainService    chain.Client
	abi             ethabi.ABI
	addresses       map[domain.ChainId]domain.Address
	newBidTopic     common.Hash
	newAuctionTopic common.Hash
}

func NewMarketplace(chainService chain.Client, cfg *MarketplaceCfg) *Marketplace {
	return &Marketplace{
		chainService:    chainService,
		abi:             baseabi.MarketplaceABI,
		addresses:       cfg.Addresses,
		newBidTopic:     baseabi.MarketplaceABI.Events["NewBid"].ID,
		newAuctionTopic: baseabi.MarketplaceABI.Events["NewAuction"].ID,
	}
}

func (m *Marketplace) address(chainId domain.ChainId) (common.Address, error) {
	addr, ok := m.addresses[chainId]
	if !ok {
		return common.Address{}, chain.ErrUnsupportedChain
	}
	return common.HexToAddress(string(addr)), nil
}

type rawListing struct {
	ListingId      *big.Int
	TokenId        *big.Int
	Quantity       *big.Int
	PricePerToken  *big.Int
	StartTimestamp *big.Int
	EndTimestamp   *big.Int
	ListingCreator common.Address
	AssetContract  common.Address
	Currency       common.Address
}

type rawAuction struct {
	AuctionId        *big.Int
	TokenId          *big.Int
	MinimumBidAmount *big.Int
	BuyoutBidAmount  *big.Int
	StartTimestamp   uint64
	EndTimestamp     uint64
	AuctionCreator   common.Address
	AssetContract    common.Address
	Currency         common.Address
}

func (m *Marketplace) GetValidDirectListings(ctx bCtx.Ctx, asset domain.AssetId) ([]marketplace.DirectListing, error) {
	to, err := m.address(asset.ChainId)
	if err != nil {
		return nil, err
	}
	tokenId, err := asset.TokenId.ToBig()
	if err != nil {
		return nil, err
	}
	unpacked, err := m.chainService.Call(ctx, asset.ChainId, to, nil, m.abi, "getValidListingsOf",
		common.HexToAddress(string(asset.ContractAddress)), tokenId)
	if err != nil {
		return nil, err
	}
	raws := *ethabi.ConvertType(unpacked[0], new([]rawListing)).(*[]rawListing)

	listings := make([]marketplace.DirectListing, 0, len(raws))
	for _, raw := range raws {
		listings = append(listings, marketplace.DirectListing{
			Id:            domain.ListingId(raw.ListingId.String()),
			Asset:         asset.ToLower(),
			Owner:         domain.Address(raw.ListingCreator.Hex()).ToLower(),
			Currency:      domain.Address(raw.Currency.Hex()).ToLower(),
			PricePerToken: raw.PricePerToken.String(),
			Quantity:      raw.Quantity.String(),
			StartTime:     ptr.Time(time.Unix(raw.StartTimestamp.Int64(), 0).UTC()),
			EndTime:       ptr.Time(time.Unix(raw.EndTimestamp.Int64(), 0).UTC()),
		})
	}
	return listings, nil
}

func (m *Marketplace) GetValidEnglishAuctions(ctx bCtx.Ctx, asset domain.AssetId) ([]marketplace.EnglishAuction, error) {
	to, err := m.address(asset.ChainId)
	if err != nil {
		return nil, err
	}
	tokenId, err := asset.TokenId.ToBig()
	if err != nil {
		return nil, err
	}
	unpacked, err := m.chainService.Call(ctx, asset.ChainId, to, nil, m.abi, "getValidAuctionsOf",
		common.HexToAddress(string(asset.ContractAddress)), tokenId)
	if err != nil {
		return nil, err
	}
	raws := *ethabi.ConvertType(unpacked[0], new([]rawAuction)).(*[]rawAuction)

	auctions := make([]marketplace.EnglishAuction, 0, len(raws))
	for _, raw := range raws {
		auctions = append(auctions, marketplace.EnglishAuction{
			Id:          domain.ListingId(raw.AuctionId.String()),
			Asset:       asset.ToLower(),
			Owner:       domain.Address(raw.AuctionCreator.Hex()).ToLower(),
			Currency:    domain.Address(raw.Currency.Hex()).ToLower(),
			MinimumBid:  raw.MinimumBidAmount.String(),
			BuyoutPrice: raw.BuyoutBidAmount.String(),
			StartTime:   ptr.Time(time.Unix(int64(raw.StartTimestamp), 0).UTC()),
			EndTime:     ptr.Time(time.Unix(int64(raw.EndTimestamp), 0).UTC()),
		})
	}
	return auctions, nil
}

type auctionParameters struct {
	AssetContract    common.Address
	TokenId          *big.Int
	Currency         common.Address
	MinimumBidAmount *big.Int
	BuyoutBidAmount  *big.Int
	StartTimestamp   uint64
	EndTimestamp     uint64
}

func (m *Marketplace) CreateAuction(ctx bCtx.Ctx, params *marketplace.CreateAuctionParams) (domain.ListingId, domain.TxHash, error) {
	to, err := m.address(params.Asset.ChainId)
	if err != nil {
		return "", "", err
	}
	tokenId, err := params.Asset.TokenId.ToBig()
	if err != nil {
		return "", "", err
	}
	receipt, err := m.chainService.Transact(ctx, params.Asset.ChainId, to, nil, m.abi, "createAuction", auctionParameters{
		AssetContract:    common.HexToAddress(string(params.Asset.ContractAddress)),
		TokenId:          tokenId,
		Currency:         common.HexToAddress(string(params.Currency)),
		MinimumBidAmount: params.MinimumBidRaw,
		BuyoutBidAmount:  params.BuyoutPriceRaw,
		StartTimestamp:   uint64(params.StartTime.Unix()),
		EndTimestamp:     uint64(params.EndTime.Unix()),
	})
	if err != nil {
		if receipt != nil {
			return "", domain.TxHash(receipt.TxHash.Hex()), err
		}
		return "", "", err
	}
	auctionId, err := m.auctionIdFromReceipt(receipt)
	if err != nil {
		ctx.WithFields(log.Fields{
			"txHash": receipt.TxHash.Hex(),
			"err":    err,
		}).Error("auction created but id not found in receipt")
		return "", domain.TxHash(receipt.TxHash.Hex()), err
	}
	return auctionId, domain.TxHash(receipt.TxHash.Hex()), nil
}

func (m *Marketplace) auctionIdFromReceipt(receipt *types.Receipt) (domain.ListingId, error) {
	for _, l := range receipt.Logs {
		if len(l.Topics) == 4 && l.Topics[0] == m.newAuctionTopic {
			auctionId := new(big.Int).SetBytes(l.Topics[2].Bytes())
			return domain.ListingId(auctionId.String()), nil
		}
	}
	return "", xerrors.New("no NewAuction log in receipt")
}

func (m *Marketplace) BuyFromListing(ctx bCtx.Ctx, chainId domain.ChainId, listingId domain.ListingId, buyer domain.Address, quantity int64, currency domain.Address, totalPriceRaw *big.Int) (domain.TxHash, error) {
	to, err := m.address(chainId)
	if err != nil {
		return "", err
	}
	id, err := listingId.ToBig()
	if err != nil {
		return "", err
	}
	var value *big.Int
	if currency.IsNativeToken() {
		value = totalPriceRaw
	}
	receipt, err := m.chainService.Transact(ctx, chainId, to, value, m.abi, "buyFromListing",
		id, common.HexToAddress(string(buyer)), big.NewInt(quantity), common.HexToAddress(string(currency)), totalPriceRaw)
	if err != nil {
		if receipt != nil {
			return domain.TxHash(receipt.TxHash.Hex()), err
		}
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

func (m *Marketplace) BidInAuction(ctx bCtx.Ctx, chainId domain.ChainId, auctionId domain.ListingId, amountRaw *big.Int) (domain.TxHash, error) {
	to, err := m.address(chainId)
	if err != nil {
		return "", err
	}
	id, err := auctionId.ToBig()
	if err != nil {
		return "", err
	}
	receipt, err := m.chainService.Transact(ctx, chainId, to, nil, m.abi, "bidInAuction", id, amountRaw)
	if err != nil {
		if receipt != nil {
			return domain.TxHash(receipt.TxHash.Hex()), err
		}
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

func (m *Marketplace) BuyoutAuction(ctx bCtx.Ctx, chainId domain.ChainId, auctionId domain.ListingId) (domain.TxHash, error) {
	to, err := m.address(chainId)
	if err != nil {
		return "", err
	}
	id, err := auctionId.ToBig()
	if err != nil {
		return "", err
	}
	receipt, err := m.chainService.Transact(ctx, chainId, to, nil, m.abi, "buyoutAuction", id)
	if err != nil {
		if receipt != nil {
			return domain.TxHash(receipt.TxHash.Hex()), err
		}
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

func (m *Marketplace) MakeOffer(ctx bCtx.Ctx, params *marketplace.MakeOfferParams) (domain.TxHash, error) {
	to, err := m.address(params.Asset.ChainId)
	if err != nil {
		return "", err
	}
	tokenId, err := params.Asset.TokenId.ToBig()
	if err != nil {
		return "", err
	}
	receipt, err := m.chainService.Transact(ctx, params.Asset.ChainId, to, nil, m.abi, "makeOffer", struct {
		AssetContract       common.Address
		TokenId             *big.Int
		Currency            common.Address
		TotalPrice          *big.Int
		ExpirationTimestamp *big.Int
	}{
		AssetContract:       common.HexToAddress(string(params.Asset.ContractAddress)),
		TokenId:             tokenId,
		Currency:            common.HexToAddress(string(params.Currency)),
		TotalPrice:          params.TotalPriceRaw,
		ExpirationTimestamp: big.NewInt(params.ExpirationTime.Unix()),
	})
	if err != nil {
		if receipt != nil {
			return domain.TxHash(receipt.TxHash.Hex()), err
		}
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

// BidEvents returns the NewBid logs of one asset, newest first. Logs with
// an unexpected layout are skipped.
func (m *Marketplace) BidEvents(ctx bCtx.Ctx, asset domain.AssetId) ([]marketplace.BidEvent, error) {
	marketAddr, err := m.address(asset.ChainId)
	if err != nil {
		return nil, err
	}
	tokenId, err := asset.TokenId.ToBig()
	if err != nil {
		return nil, err
	}
	filter := ethereum.FilterQuery{
		Addresses: []common.Address{marketAddr},
		Topics: [][]common.Hash{
			{m.newBidTopic},
			nil,
			nil,
			{common.HexToAddress(string(asset.ContractAddress)).Hash()},
		},
	}
	logs, err := m.chainService.FilterLogs(ctx, asset.ChainId, filter)
	if err != nil {
		return nil, err
	}

	events := make([]marketplace.BidEvent, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		ev, err := m.decodeNewBid(asset, logs[i])
		if err != nil {
			ctx.WithFields(log.Fields{
				"txHash":   logs[i].TxHash.Hex(),
				"logIndex": logs[i].Index,
				"err":      err,
			}).Warn("skipping malformed bid log")
			continue
		}
		if ev.Asset.TokenId != domain.TokenId(tokenId.String()) {
			continue
		}
		events = append(events, *ev)
	}
	return events, nil
}

func (m *Marketplace) decodeNewBid(asset domain.AssetId, l types.Log) (*marketplace.BidEvent, error) {
	if len(l.Topics) != 4 {
		return nil, domain.ErrBadParamInput
	}
	unpacked, err := m.abi.Unpack("NewBid", l.Data)
	if err != nil {
		return nil, err
	}
	if len(unpacked) != 3 {
		return nil, domain.ErrBadParamInput
	}
	tokenId, ok := unpacked[0].(*big.Int)
	if !ok {
		return nil, domain.ErrBadParamInput
	}
	currency, ok := unpacked[1].(common.Address)
	if !ok {
		return nil, domain.ErrBadParamInput
	}
	bidAmount, ok := unpacked[2].(*big.Int)
	if !ok || bidAmount.Sign() < 0 {
		return nil, domain.ErrBadParamInput
	}
	bidder := common.BytesToAddress(l.Topics[2].Bytes())
	assetContract := common.BytesToAddress(l.Topics[3].Bytes())
	return &marketplace.BidEvent{
		Asset: domain.AssetId{
			ChainId:         asset.ChainId,
			ContractAddress: domain.Address(assetContract.Hex()).ToLower(),
			TokenId:         domain.TokenId(tokenId.String()),
		},
		Bidder:      domain.Address(bidder.Hex()).ToLower(),
		Currency:    domain.Address(currency.Hex()).ToLower(),
		AmountRaw:   bidAmount.String(),
		TxHash:      domain.TxHash(l.TxHash.Hex()),
		BlockNumber: domain.BlockNumber(l.BlockNumber),
		LogIndex:    l.Index,
	}, nil
}
