package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/marketgo/base/abi"
	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/service/chain"
)

// nativeCurrencySymbols maps a chain to its gas token symbol, used when a
// listing is denominated in the native coin instead of an erc20
var nativeCurrencySymbols = map[domain.ChainId]string{
	1:     "ETH",
	5:     "ETH",
	137:   "MATIC",
	80001: "MATIC",
}

const nativeCurrencyDecimals = 18

// Erc20 resolves currency metadata from the token contract. It implements
// domain.CurrencyRegistry.
type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		chainService: chainService,
		abi:          baseabi.ERC20ABI,
	}
}

func (e *Erc20) Get(ctx bCtx.Ctx, chainId domain.ChainId, address domain.Address) (*domain.Currency, error) {
	// marketplace contracts denominate native listings with the 0xeee..e
	// sentinel, older payloads with the zero address
	if address.IsNativeToken() {
		symbol, ok := nativeCurrencySymbols[chainId]
		if !ok {
			return nil, domain.ErrInvalidChainId
		}
		return &domain.Currency{
			ChainId:  chainId,
			Address:  domain.EmptyAddress,
			Symbol:   symbol,
			Decimals: nativeCurrencyDecimals,
		}, nil
	}

	to := common.HexToAddress(string(address))
	unpacked, err := e.chainService.Call(ctx, chainId, to, nil, e.abi, "symbol")
	if err != nil {
		return nil, err
	}
	symbol := unpacked[0].(string)

	unpacked, err = e.chainService.Call(ctx, chainId, to, nil, e.abi, "decimals")
	if err != nil {
		return nil, err
	}
	decimals := unpacked[0].(uint8)

	return &domain.Currency{
		ChainId:  chainId,
		Address:  address.ToLower(),
		Symbol:   symbol,
		Decimals: int32(decimals),
	}, nil
}
