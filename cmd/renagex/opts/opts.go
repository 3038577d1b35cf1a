package opts

import (
	"github.com/renagex/renagex/pkg/config"
	"github.com/renagex/renagex/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	FileConfig *config.FileConfig
	Reporter   status.Reporter
}
