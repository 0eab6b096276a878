package domain

// AssetId identifies one token of one collection on one chain. It scopes
// every listing query and event filter. Comparisons are byte-exact on the
// lowercased address, partial matches are not accepted.
type AssetId struct {
	ChainId         ChainId `json:"chainId"`
	ContractAddress Address `json:"contractAddress"`
	TokenId         TokenId `json:"tokenId"`
}

func (id AssetId) ToLower() AssetId {
	return AssetId{
		ChainId:         id.ChainId,
		ContractAddress: id.ContractAddress.ToLower(),
		TokenId:         id.TokenId,
	}
}

func (id AssetId) Equals(other AssetId) bool {
	return id.ChainId == other.ChainId &&
		id.ContractAddress.Equals(other.ContractAddress) &&
		id.TokenId == other.TokenId
}
