package marketplace

import (
	"github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/domain"
)

// ApprovalStatus is the outcome of one check-then-grant cycle. It is a
// point-in-time read and is never cached across cycles.
type ApprovalStatus struct {
	Owner       domain.Address `json:"owner"`
	Operator    domain.Address `json:"operator"`
	Granted     bool           `json:"granted"`
	TxSubmitted bool           `json:"txSubmitted"`
	TxHash      domain.TxHash  `json:"txHash,omitempty"`
}

// ApprovalUseCase gates listing creation on marketplace operator approval
type ApprovalUseCase interface {
	// EnsureApproval reads the current approval of (owner, marketplace
	// operator) and grants it when absent, waiting for confirmation. It
	// submits at most one transaction per call and none when already
	// granted.
	EnsureApproval(c ctx.Ctx, asset domain.AssetId, owner domain.Address) (*ApprovalStatus, error)
}
