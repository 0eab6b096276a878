package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var MarketplaceABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	MarketplaceABI = _abi
}

var marketplaceABIJson = `
[
  {
    "inputs": [
      { "internalType": "address", "name": "assetContract", "type": "address" },
      { "internalType": "uint256", "name": "tokenId", "type": "uint256" }
    ],
    "name": "getValidListingsOf",
    "outputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "listingId", "type": "uint256" },
          { "internalType": "uint256", "name": "tokenId", "type": "uint256" },
          { "internalType": "uint256", "name": "quantity", "type": "uint256" },
          { "internalType": "uint256", "name": "pricePerToken", "type": "uint256" },
          { "internalType": "uint128", "name": "startTimestamp", "type": "uint128" },
          { "internalType": "uint128", "name": "endTimestamp", "type": "uint128" },
          { "internalType": "address", "name": "listingCreator", "type": "address" },
          { "internalType": "address", "name": "assetContract", "type": "address" },
          { "internalType": "address", "name": "currency", "type": "address" }
        ],
        "internalType": "struct IDirectListings.Listing[]",
        "name": "listings",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "address", "name": "assetContract", "type": "address" },
      { "internalType": "uint256", "name": "tokenId", "type": "uint256" }
    ],
    "name": "getValidAuctionsOf",
    "outputs": [
      {
        "components": [
          { "internalType": "uint256", "name": "auctionId", "type": "uint256" },
          { "internalType": "uint256", "name": "tokenId", "type": "uint256" },
          { "internalType": "uint256", "name": "minimumBidAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "buyoutBidAmount", "type": "uint256" },
          { "internalType": "uint64", "name": "startTimestamp", "type": "uint64" },
          { "internalType": "uint64", "name": "endTimestamp", "type": "uint64" },
          { "internalType": "address", "name": "auctionCreator", "type": "address" },
          { "internalType": "address", "name": "assetContract", "type": "address" },
          { "internalType": "address", "name": "currency", "type": "address" }
        ],
        "internalType": "struct IEnglishAuctions.Auction[]",
        "name": "auctions",
        "type": "tuple[]"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {
        "components": [
          { "internalType": "address", "name": "assetContract", "type": "address" },
          { "internalType": "uint256", "name": "tokenId", "type": "uint256" },
          { "internalType": "address", "name": "currency", "type": "address" },
          { "internalType": "uint256", "name": "minimumBidAmount", "type": "uint256" },
          { "internalType": "uint256", "name": "buyoutBidAmount", "type": "uint256" },
          { "internalType": "uint64", "name": "startTimestamp", "type": "uint64" },
          { "internalType": "uint64", "name": "endTimestamp", "type": "uint64" }
        ],
        "internalType": "struct IEnglishAuctions.AuctionParameters",
        "name": "params",
        "type": "tuple"
      }
    ],
    "name": "createAuction",
    "outputs": [
      { "internalType": "uint256", "name": "auctionId", "type": "uint256" }
    ],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "listingId", "type": "uint256" },
      { "internalType": "address", "name": "buyFor", "type": "address" },
      { "internalType": "uint256", "name": "quantity", "type": "uint256" },
      { "internalType": "address", "name": "currency", "type": "address" },
      { "internalType": "uint256", "name": "expectedTotalPrice", "type": "uint256" }
    ],
    "name": "buyFromListing",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "auctionId", "type": "uint256" },
      { "internalType": "uint256", "name": "bidAmount", "type": "uint256" }
    ],
    "name": "bidInAuction",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "uint256", "name": "auctionId", "type": "uint256" }
    ],
    "name": "buyoutAuction",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      {
        "components": [
          { "internalType": "address", "name": "assetContract", "type": "address" },
          { "internalType": "uint256", "name": "tokenId", "type": "uint256" },
          { "internalType": "address", "name": "currency", "type": "address" },
          { "internalType": "uint256", "name": "totalPrice", "type": "uint256" },
          { "internalType": "uint256", "name": "expirationTimestamp", "type": "uint256" }
        ],
        "internalType": "struct IOffers.OfferParams",
        "name": "params",
        "type": "tuple"
      }
    ],
    "name": "makeOffer",
    "outputs": [
      { "internalType": "uint256", "name": "offerId", "type": "uint256" }
    ],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": true, "internalType": "uint256", "name": "auctionId", "type": "uint256" },
      { "indexed": true, "internalType": "address", "name": "bidder", "type": "address" },
      { "indexed": true, "internalType": "address", "name": "assetContract", "type": "address" },
      { "indexed": false, "internalType": "uint256", "name": "tokenId", "type": "uint256" },
      { "indexed": false, "internalType": "address", "name": "currency", "type": "address" },
      { "indexed": false, "internalType": "uint256", "name": "bidAmount", "type": "uint256" }
    ],
    "name": "NewBid",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": true, "internalType": "address", "name": "auctionCreator", "type": "address" },
      { "indexed": true, "internalType": "uint256", "name": "auctionId", "type": "uint256" },
      { "indexed": true, "internalType": "address", "name": "assetContract", "type": "address" },
      { "indexed": false, "internalType": "uint256", "name": "tokenId", "type": "uint256" }
    ],
    "name": "NewAuction",
    "type": "event"
  }
]
`
