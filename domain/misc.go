package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeTokenAddress is the sentinel marketplace contracts use to denominate
// a listing in the chain's gas coin instead of an erc20.
const NativeTokenAddress = Address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) IsNativeToken() bool {
	return a.IsEmpty() || a.Equals(NativeTokenAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBig() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return id, nil
}

func (i TokenId) ToHexString() (string, error) {
	id, err := i.ToBig()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%064x", id), nil
}

type BlockNumber uint64

type TxHash string

type ListingId string

func (l ListingId) String() string {
	return string(l)
}

func (l ListingId) ToBig() (*big.Int, error) {
	id, ok := new(big.Int).SetString(string(l), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid listing id %s", l)
	}
	return id, nil
}
