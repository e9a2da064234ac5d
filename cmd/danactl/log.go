package main

import (
	"github.com/dana-network/danad/infrastructure/logger"
)

var log = logger.RegisterSubSystem("DCTL")
