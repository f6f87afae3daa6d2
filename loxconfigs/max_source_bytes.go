package loxconfigs

import (
	"math"

	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
)

// MaxSourceBytes bounds the size of a single scanned source.
type MaxSourceBytes int

var maxSourceBytesFlag = cmds.Var[int]("-max-source-bytes")

func (Module) MaxSourceBytes(
	loader configs.Loader,
) MaxSourceBytes {
	limit := math.MaxInt
	if *maxSourceBytesFlag > 0 {
		limit = min(limit, *maxSourceBytesFlag)
	}
	if n := configs.First[int](loader, "max_source_bytes"); n > 0 {
		limit = min(limit, n)
	}
	return MaxSourceBytes(limit)
}
