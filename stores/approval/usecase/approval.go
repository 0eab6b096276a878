package usecase

import (
	"errors"

	bCtx "github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/base/log"
	"github.com/x-xyz/marketgo/domain"
	"github.com/x-xyz/marketgo/domain/marketplace"
	"github.com/x-xyz/marketgo/service/chain"
)

type ApprovalUseCaseCfg struct {
	Collection marketplace.CollectionContract
	// Operators maps a chain to its marketplace contract, the operator
	// the owner grants transfer rights to.
	Operators map[domain.ChainId]domain.Address
}

type approvalUseCase struct {
	collection marketplace.CollectionContract
	operators  map[domain.ChainId]domain.Address
}

func NewApprovalUseCase(cfg *ApprovalUseCaseCfg) marketplace.ApprovalUseCase {
	return &approvalUseCase{
		collection: cfg.Collection,
		operators:  cfg.Operators,
	}
}

func (u *approvalUseCase) EnsureApproval(c bCtx.Ctx, asset domain.AssetId, owner domain.Address) (*marketplace.ApprovalStatus, error) {
	asset = asset.ToLower()
	owner = owner.ToLower()

	operator, ok := u.operators[asset.ChainId]
	if !ok {
		c.WithFields(log.Fields{
			"chainId": asset.ChainId,
		}).Error("no marketplace operator for chain")
		return nil, domain.ErrInvalidChainId
	}

	granted, err := u.collection.IsApprovedForAll(c, asset.ChainId, asset.ContractAddress, owner, operator)
	if err != nil {
		c.WithFields(log.Fields{
			"asset": asset,
			"owner": owner,
			"err":   err,
		}).Error("collection.IsApprovedForAll failed")
		return nil, domain.ErrApprovalReadFailed
	}

	status := &marketplace.ApprovalStatus{
		Owner:    owner,
		Operator: operator.ToLower(),
		Granted:  granted,
	}
	if granted {
		return status, nil
	}

	txHash, err := u.collection.SetApprovalForAll(c, asset.ChainId, asset.ContractAddress, operator, true)
	if err != nil {
		c.WithFields(log.Fields{
			"asset":    asset,
			"owner":    owner,
			"operator": operator,
			"err":      err,
		}).Error("collection.SetApprovalForAll failed")
		if errors.Is(err, chain.ErrTxReverted) {
			return nil, domain.ErrApprovalTxReverted
		}
		return nil, domain.ErrApprovalTxRejected
	}

	status.Granted = true
	status.TxSubmitted = true
	status.TxHash = txHash
	return status, nil
}
