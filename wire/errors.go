package wire

import "errors"

// ErrTruncated indicates a Reader ran out of bytes before a value's
// declared length was satisfied — a malformed or cut-short payload.
var ErrTruncated = errors.New("wire: truncated payload")

// ErrBadStringTerminator indicates a decoded string's declared length
// included a terminator byte that was not zero.
var ErrBadStringTerminator = errors.New("wire: string missing NUL terminator")

// ErrLengthTooLarge indicates a declared length exceeds what this codec
// accepts (guards against a corrupt length prefix causing a huge alloc).
var ErrLengthTooLarge = errors.New("wire: declared length too large")

// ErrUnknownValueTag indicates a key or metadata value tag byte was
// neither 0 (string) nor 1 (binary).
var ErrUnknownValueTag = errors.New("wire: unknown value tag")
