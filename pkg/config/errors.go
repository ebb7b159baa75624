package config

import "errors"

// ErrInvalidConfig indicates a config file, environment variable, or field
// value that could not be accepted. Wrapped errors carry the specific field
// and value.
var ErrInvalidConfig = errors.New("invalid configuration")
