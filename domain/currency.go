package domain

import "github.com/x-xyz/marketgo/base/ctx"

// Currency is the point-in-time metadata of a payment token
type Currency struct {
	ChainId  ChainId `json:"chainId"`
	Address  Address `json:"address"`
	Symbol   string  `json:"symbol"`
	Decimals int32   `json:"decimals"`
}

// CurrencyRegistry resolves payment token metadata. Implementations read
// from the erc20 contract; callers may memoize results.
type CurrencyRegistry interface {
	Get(ctx.Ctx, ChainId, Address) (*Currency, error)
}
