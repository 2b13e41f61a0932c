package config

import "errors"

// ErrInvalidSeed indicates a seed file that does not describe a valid board
var ErrInvalidSeed = errors.New("invalid seed file")
