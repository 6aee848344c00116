package schema

import der "github.com/havregryn/strictder"

/*
options.go parses the `asn1:"..."` struct tag into an Options value,
grounded on the teacher's opts.go NewOptions/parseOptions grammar:
comma-separated tokens, "tag:N" for an explicit tag number (defaulting
its class to CONTEXT SPECIFIC, same as the teacher's "a tag: keyword
implies context-specific unless overridden"), bare keywords for
booleans, and a handful of string-identifier keywords selecting which
restricted character-string kind a Go string field decodes as.
*/

// Options is the parsed form of one field's `asn1` struct tag.
type Options struct {
	HasTag   bool
	Tag      int
	Class    int
	Explicit bool
	Optional bool
	Set      bool // slice field decodes as SET OF rather than SEQUENCE OF
	Default  string
	HasDefault bool

	// Identifier names which restricted string/time kind a Go string
	// field should decode as: "ia5", "numeric", "printable", "visible",
	// "t61", "universal", "bmp", "general", "graphic", "utf8" (default),
	// or "utctime"/"generalizedtime" for a Go string field carrying a
	// textual timestamp.
	Identifier string
}

var stringIdentifiers = []string{
	"ia5", "numeric", "printable", "visible", "t61",
	"universal", "bmp", "general", "graphic", "utf8",
	"utctime", "generalizedtime",
}

// defaultOptions mirrors the teacher's implicitOptions: CONTEXT SPECIFIC
// is the implied class the moment a tag number is present, matching
// ASN.1's own convention that an untyped "[N]" in a module is
// context-specific.
func defaultOptions() Options {
	return Options{Class: der.ClassUniversal}
}

// ParseOptions parses one `asn1:"..."` tag string body (without the
// surrounding struct-tag quoting) into Options.
func ParseOptions(tag string) (Options, error) {
	opts := defaultOptions()
	tag = trimS(tag)
	if tag == "" {
		return opts, nil
	}

	classSet := false
	for _, token := range split(tag, ",") {
		token = trimS(lc(token))
		switch {
		case token == "":
			continue
		case hasPfx(token, "tag:"):
			n, err := atoi(trimPfx(token, "tag:"))
			if err != nil || n < 0 {
				return opts, mkerr("schema: invalid tag number in \"" + token + "\"")
			}
			opts.HasTag = true
			opts.Tag = n
			if !classSet {
				opts.Class = der.ClassContext
			}
		case token == "explicit":
			opts.Explicit = true
		case token == "optional":
			opts.Optional = true
		case token == "set":
			opts.Set = true
		case token == "application":
			opts.Class = der.ClassApplication
			classSet = true
		case token == "private":
			opts.Class = der.ClassPrivate
			classSet = true
		case token == "context" || token == "context-specific":
			opts.Class = der.ClassContext
			classSet = true
		case hasPfx(token, "default:"):
			opts.Default = trimPfx(token, "default:")
			opts.HasDefault = true
		case strInSlice(token, stringIdentifiers):
			opts.Identifier = token
		default:
			return opts, mkerr("schema: unrecognized asn1 tag keyword \"" + token + "\"")
		}
	}

	return opts, nil
}

func mkerr(msg string) error { return &tagError{msg: msg} }

type tagError struct{ msg string }

func (e *tagError) Error() string { return e.msg }
