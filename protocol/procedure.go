package protocol

// Procedure identifies which backend operation a request invokes.
type Procedure uint32

// The eleven procedures a session may invoke. OPEN/CLOSE/GETKEY/GETCHILD
// are implemented against the Backend interface; the rest are reserved,
// and a conforming daemon must decode them without crashing and reply
// StatusNotImplemented until a backend wires them through.
const (
	OPEN Procedure = iota + 1
	CLOSE
	STATKEY
	GETKEY
	SETKEY
	SETKEYS
	RENAME
	REMOVEKEY
	GETCHILD
	MONITORKEY
	MONITORKEYS
)

var procedureNames = map[Procedure]string{
	OPEN:        "OPEN",
	CLOSE:       "CLOSE",
	STATKEY:     "STATKEY",
	GETKEY:      "GETKEY",
	SETKEY:      "SETKEY",
	SETKEYS:     "SETKEYS",
	RENAME:      "RENAME",
	REMOVEKEY:   "REMOVEKEY",
	GETCHILD:    "GETCHILD",
	MONITORKEY:  "MONITORKEY",
	MONITORKEYS: "MONITORKEYS",
}

// String returns the procedure's name, or "UNKNOWN" for an
// unrecognised code (a malformed or future-versioned request).
func (p Procedure) String() string {
	if name, ok := procedureNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// Known reports whether p is one of the eleven procedures this package
// defines, implemented or reserved. A request naming any other code is
// malformed, not merely unimplemented.
func (p Procedure) Known() bool {
	_, ok := procedureNames[p]
	return ok
}

// Implemented reports whether this procedure is wired to a Backend
// operation rather than merely reserved.
func (p Procedure) Implemented() bool {
	switch p {
	case OPEN, CLOSE, GETKEY, GETCHILD:
		return true
	default:
		return false
	}
}
