package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var ERC20ABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc20ABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	ERC20ABI = _abi
}

var erc20ABIJson = `
[
  {
    "inputs": [],
    "name": "symbol",
    "outputs": [
      { "internalType": "string", "name": "", "type": "string" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "decimals",
    "outputs": [
      { "internalType": "uint8", "name": "", "type": "uint8" }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`
