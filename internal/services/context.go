package services

import (
	"github.com/zclconf/go-cty/cty"
)

// DefaultInitRadius is used when the init argument names a file.
const DefaultInitRadius = 2.0

// VarContext identifies a source of named values, such as a data file or a
// file of initial values. Reading it is left to the routines.
type VarContext struct {
	Path string
}

// NewVarContext returns the context backed by path. An empty path is an
// empty context.
func NewVarContext(path string) VarContext {
	return VarContext{Path: path}
}

// Empty reports whether the context has no backing file.
func (v VarContext) Empty() bool {
	return v.Path == ""
}

// ResolveInit interprets the init argument. A value that parses as a real
// number is an initialization radius and leaves the init context empty;
// anything else is the path of an init file, used with the default radius.
func ResolveInit(raw string) (float64, VarContext) {
	num, err := cty.ParseNumberVal(raw)
	if err != nil {
		return DefaultInitRadius, NewVarContext(raw)
	}
	radius, _ := num.AsBigFloat().Float64()
	return radius, VarContext{}
}
