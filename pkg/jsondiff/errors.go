package jsondiff

import "github.com/pkg/errors"

var (
	ErrConfigMustBeSet  = errors.New("config must be set")
	ErrStrictArrayOrder = errors.New("strict comparison does not allow array ordering to be ignored")
)
