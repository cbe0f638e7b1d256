package healthcheck

import (
	"github.com/hinatamarket/goapi/base/ctx"
)

type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
}

type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}
