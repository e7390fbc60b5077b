package list

import (
	"errors"
)

var (
	ErrorListNodeIsNil          = errors.New("list node is nil")
	ErrorListNodeIsNotInTheList = errors.New("list node is not in the list")
)
