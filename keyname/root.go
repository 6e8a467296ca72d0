package keyname

// Root identifies which top-level namespace a Name lives under.
type Root int

const (
	// RootCascading is the empty root: a name with no explicit root token,
	// resolved by a caller-supplied precedence list (the "dir" namespaces
	// visible at the default mount point plus system/user overlays).
	RootCascading Root = iota
	RootSystem
	RootUser
	RootSpec
	RootProc
	RootDir
)

// rootNames is the fixed set of recognised root tokens, in the order the
// spec lists them. An empty string is the cascading root and is handled
// separately since it is not a literal token to scan for.
var rootNames = [...]string{
	RootSystem: "system",
	RootUser:   "user",
	RootSpec:   "spec",
	RootProc:   "proc",
	RootDir:    "dir",
}

// String returns the root's canonical token, or "" for the cascading root.
func (r Root) String() string {
	if r == RootCascading {
		return ""
	}
	if int(r) < len(rootNames) {
		return rootNames[r]
	}
	return ""
}

// parseRoot resolves a leading root token. ok is false when token names
// none of the recognised roots (the caller treats this as invalid input).
func parseRoot(token string) (Root, bool) {
	if token == "" {
		return RootCascading, true
	}
	for r, name := range rootNames {
		if r == int(RootCascading) {
			continue
		}
		if name == token {
			return Root(r), true
		}
	}
	return RootCascading, false
}
