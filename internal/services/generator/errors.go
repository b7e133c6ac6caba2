package generator

import "errors"

var ErrUnknownCapitalization = errors.New("unknown capitalization")
var ErrInvalidConfig = errors.New("invalid generator config")
