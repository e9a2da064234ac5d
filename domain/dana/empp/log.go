package empp

import (
	"github.com/dana-network/danad/infrastructure/logger"
)

var log = logger.RegisterSubSystem("EMPP")
