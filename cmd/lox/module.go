package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/loxlang"
)

type Module struct {
	dscope.Module
	Lox    loxlang.Module
	Debugs debugs.Module
}
