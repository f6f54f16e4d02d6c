package config

import "errors"

// Configuration validation errors
var (
	ErrInvalidGridSize    = errors.New("invalid grid size")
	ErrInvalidTileSize    = errors.New("invalid tile size")
	ErrInvalidFPS         = errors.New("invalid frame rate")
	ErrInvalidTickDivisor = errors.New("invalid tick divisor")
	ErrInvalidBackend     = errors.New("invalid backend")
	ErrInvalidColor       = errors.New("invalid color")
	ErrInvalidChime       = errors.New("invalid chime")
)

// Configuration loading errors
var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
