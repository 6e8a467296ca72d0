// Package kvvalue holds a Key's value: either a UTF-8 string or an opaque
// binary blob with an authoritative length, mutually exclusive and always
// discriminated by IsString/IsBinary.
package kvvalue
