package fuses

import "errors"

// ErrInvalidFuseLength is returned by New when the input is not
// exactly TotalFuses bits long.
var ErrInvalidFuseLength = errors.New("invalid fuse length")
