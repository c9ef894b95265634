package gal16v8

import "errors"

// ErrInvalidModeBits is returned when SYN=0, AC0=0: the one bit
// combination the GAL16V8 architecture leaves undefined.
var ErrInvalidModeBits = errors.New("invalid mode bits: SYN=0, AC0=0")

// ErrUnsupportedMode is returned where Complex/Simple mode decoding
// has not been supplied (column table or cell-assignment rules).
var ErrUnsupportedMode = errors.New("unsupported mode")
