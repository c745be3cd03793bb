package ast

import "errors"

var (
	ErrProperty = errors.New("property error")
)
