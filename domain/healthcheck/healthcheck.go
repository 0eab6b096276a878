package healthcheck

import (
	"github.com/x-xyz/marketgo/base/ctx"
)

// HealthCheckRepo probes the dependencies the service cannot serve
// without
type HealthCheckRepo interface {
	PingChains(ctx ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(ctx ctx.Ctx) error
}
