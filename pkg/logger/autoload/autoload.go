// Package autoload initializes the global logger from LOG_* environment
// variables as a side effect of being imported.
package autoload

import (
	configx "github.com/ordervoice/kiosk-agent/pkg/config"
	logx "github.com/ordervoice/kiosk-agent/pkg/logger"
)

func init() {
	cfg := configx.MustLoad[logx.Config]("LOG")
	logx.Init(*cfg)
}
