package core

import (
	"errors"
)

var (
	ErrUnknownColor      = errors.New("unknown color")
	ErrUnsupportedConfig = errors.New("unsupported config format")
	ErrNoLogo            = errors.New("logo not loaded")
)
