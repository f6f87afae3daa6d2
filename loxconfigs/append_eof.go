package loxconfigs

import (
	"github.com/reusee/lox/cmds"
	"github.com/reusee/lox/configs"
)

// AppendEOF makes scans end with an explicit Eof token.
type AppendEOF bool

var appendEOFFlag = cmds.Switch("-eof")

func (Module) AppendEOF(
	loader configs.Loader,
) AppendEOF {
	if *appendEOFFlag {
		return true
	}
	return AppendEOF(configs.First[bool](loader, "append_eof"))
}
