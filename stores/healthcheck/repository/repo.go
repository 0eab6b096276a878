package repository

import (
	"time"

	"github.com/x-xyz/marketgo/base/ctx"
	"github.com/x-xyz/marketgo/domain"
	hcdomain "github.com/x-xyz/marketgo/domain/healthcheck"
	"github.com/x-xyz/marketgo/service/chain"
)

type impl struct {
	chainService chain.Client
	chainIds     []domain.ChainId
}

// New creates a repo that probes every configured chain rpc
func New(chainService chain.Client, chainIds []domain.ChainId) hcdomain.HealthCheckRepo {
	return &impl{
		chainService: chainService,
		chainIds:     chainIds,
	}
}

func (im *impl) PingChains(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	for _, chainId := range im.chainIds {
		if err := im.chainService.Ping(ctx, chainId); err != nil {
			context.WithField("err", err).Error("ping chain error")
			return err
		}
	}
	return nil
}
