package keyname

import "strings"

// token is one '/'-delimited piece of the input, already escape-decoded,
// along with bookkeeping needed to resolve navigation correctly.
type token struct {
	raw       string // exact substring as written, escapes untouched
	decoded   string // with \\ and \X escapes resolved
	hadEscape bool   // true if any backslash-escape occurred in this token
}

// tokenize splits s on unescaped '/' boundaries. strict controls whether a
// trailing unclosed escape is rejected (strict, the default) or treated as
// a literal trailing backslash (compatibility mode). ok is false only when
// strict mode rejects a trailing escape.
func tokenize(s string, strict bool) ([]token, bool) {
	var toks []token
	var raw, dec strings.Builder
	escaping := false
	hadEscape := false

	flush := func() {
		toks = append(toks, token{raw: raw.String(), decoded: dec.String(), hadEscape: hadEscape})
		raw.Reset()
		dec.Reset()
		hadEscape = false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaping {
			dec.WriteByte(c)
			raw.WriteByte(c)
			escaping = false
			continue
		}
		switch c {
		case '\\':
			escaping = true
			hadEscape = true
			raw.WriteByte(c)
		case '/':
			flush()
		default:
			dec.WriteByte(c)
			raw.WriteByte(c)
		}
	}
	if escaping {
		if !strict {
			dec.WriteByte('\\')
			raw.WriteByte('\\')
		} else {
			return nil, false
		}
	}
	flush()
	return toks, true
}

// resolveSegments applies the dot/dot-dot/sentinel rules to tokens (which
// must already exclude the root token) against an initially-empty segment
// stack representing "at the root".
func resolveSegments(toks []token) []string {
	stack := make([]string, 0, len(toks))
	for _, t := range toks {
		switch {
		case t.raw == "":
			// Collapsed consecutive/trailing separator.
			continue
		case t.raw == "%":
			stack = append(stack, "")
		case !t.hadEscape && t.decoded == ".":
			// Elided, not navigation in the popping sense.
		case !t.hadEscape && t.decoded == "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			// Excess pops are silently capped at the root.
		default:
			stack = append(stack, t.decoded)
		}
	}
	return stack
}

// Parse parses input into a canonical Name. A nil input returns
// ErrNilInput and the empty Name. Any other invalid input (unknown root,
// leading whitespace, an unclosed escape in strict mode) yields the empty
// Name with a nil error — parsing failure is not a hard error here, per
// spec: only a nil input pointer is.
func Parse(input *string) (Name, error) {
	if input == nil {
		return Empty, ErrNilInput
	}
	s := *input
	if s == "" {
		return Empty, nil
	}
	if len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		return Empty, nil
	}

	toks, ok := tokenize(s, true)
	if !ok || len(toks) == 0 {
		return Empty, nil
	}

	rootTok := toks[0]
	rootPart, ownerPart, hasOwner := strings.Cut(rootTok.decoded, ":")
	root, recognised := parseRoot(rootPart)
	if !recognised {
		return Empty, nil
	}

	owner := ""
	if hasOwner && root == RootUser {
		owner = ownerPart
	}

	segs := resolveSegments(toks[1:])
	return Name{root: root, segments: segs, owner: owner}, nil
}

// escapeSegment renders a decoded segment back into its escaped, wire-safe
// form: the empty string becomes the "%" sentinel; a segment that is
// itself exactly "%", "." or ".." escapes its leading character so
// re-parsing cannot mistake it for the sentinel or for navigation; any '/'
// or '\\' occurring anywhere in the segment is escaped in place.
func escapeSegment(seg string) string {
	if seg == "" {
		return "%"
	}
	var b strings.Builder
	rest := seg
	if seg == "%" || seg == "." || seg == ".." {
		b.WriteByte('\\')
		b.WriteByte(seg[0])
		rest = seg[1:]
	}
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '/' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
