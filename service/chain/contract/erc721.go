package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/x-xyz/marketgo/base/abi"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
	"github.com/x-xyz/marketgo/service/chain"
)

// Erc721 adapts the collection contract to the domain boundary. It
// implements marketplace.CollectionContract.
type Erc721 struct {
	chainService  chain.Client
	abi           ethabi.ABI
	transferTopic common.Hash
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:           baseabi.ERC721ABI,
		chainService:  chainService,
		transferTopic: baseabi.ERC721ABI.Events["Transfer"].ID,
	}
}

func (e *Erc721) IsApprovedForAll(ctx bCtx.Ctx, chainId domain.ChainId, collection, owner, operator domain.Address) (bool, error) {
	method := "isApprovedForAll"
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(string(collection)), nil, e.abi, method,
		common.HexToAddress(string(owner)), common.HexToAddress(string(operator)))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) SetApprovalForAll(ctx bCtx.Ctx, chainId domain.ChainId, collection, operator domain.Address, approved bool) (domain.TxHash, error) {
	method := "setApprovalForAll"
	receipt, err := e.chainService.Transact(ctx, chainId, common.HexToAddress(string(collection)), nil, e.abi, method,
		common.HexToAddress(string(operator)), approved)
	if err != nil {
		if receipt != nil {
			return domain.TxHash(receipt.TxHash.Hex()), err
		}
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, asset domain.AssetId) (domain.Address, error) {
	method := "ownerOf"
	tokenId, err := asset.TokenId.ToBig()
	if err != nil {
		return "", err
	}
	unpacked, err := e.chainService.Call(ctx, asset.ChainId, common.HexToAddress(string(asset.ContractAddress)), nil, e.abi, method, tokenId)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).Hex()).ToLower(), nil
}

// TransferEvents returns the Transfer logs of one token, newest first.
// Logs that do not carry the expected indexed layout are skipped.
func (e *Erc721) TransferEvents(ctx bCtx.Ctx, asset domain.AssetId) ([]marketplace.TransferEvent, error) {
	tokenId, err := asset.TokenId.ToBig()
	if err != nil {
		return nil, err
	}
	filter := ethereum.FilterQuery{
		Addresses: []common.Address{common.HexToAddress(string(asset.ContractAddress))},
		Topics: [][]common.Hash{
			{e.transferTopic},
			nil,
			nil,
			{common.BigToHash(tokenId)},
		},
	}
	logs, err := e.chainService.FilterLogs(ctx, asset.ChainId, filter)
	if err != nil {
		return nil, err
	}

	events := make([]marketplace.TransferEvent, 0, len(logs))
	// node order is ascending, history is served newest first
	for i := len(logs) - 1; i >= 0; i-- {
		ev, err := e.decodeTransfer(asset, logs[i])
		if err != nil {
			ctx.WithFields(log.Fields{
				"txHash":   logs[i].TxHash.Hex(),
				"logIndex": logs[i].Index,
				"err":      err,
			}).Warn("skipping malformed transfer log")
			continue
		}
		events = append(events, *ev)
	}
	return events, nil
}

func (e *Erc721) decodeTransfer(asset domain.AssetId, l types.Log) (*marketplace.TransferEvent, error) {
	if len(l.Topics) != 4 {
		return nil, domain.ErrBadParamInput
	}
	from := common.BytesToAddress(l.Topics[1].Bytes())
	to := common.BytesToAddress(l.Topics[2].Bytes())
	tokenId := new(big.Int).SetBytes(l.Topics[3].Bytes())
	return &marketplace.TransferEvent{
		Asset: domain.AssetId{
			ChainId:         asset.ChainId,
			ContractAddress: domain.Address(l.Address.Hex()).ToLower(),
			TokenId:         domain.TokenId(tokenId.String()),
		},
		From:        domain.Address(from.Hex()).ToLower(),
		To:          domain.Address(to.Hex()).ToLower(),
		TxHash:      domain.TxHash(l.TxHash.Hex()),
		BlockNumber: domain.BlockNumber(l.BlockNumber),
		LogIndex:    l.Index,
	}, nil
}
