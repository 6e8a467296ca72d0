// Package keyset implements KeySet, an ordered container of *kdbkey.Key
// kept in strict lexicographic order by canonical name, segment by
// segment rather than byte by byte, so escape sequences compare
// correctly. Appending a Key the set already holds under the same name
// replaces it in place and adjusts refcounts accordingly; appending a new
// name inserts it at its sorted position.
package keyset
