package property

import (
	"strings"

	"github.com/Jakarta-EE-Petclinic/wildfly-build-tools/fperr"
	"github.com/pkg/errors"
)

// Replacer substitutes ${name} placeholders using a Resolver.
//
// Substitution is a single left to right pass: replacement values are
// copied to the output as they are and never scanned for placeholders.
// A placeholder may carry a default, ${name:default}, used when the
// resolver does not know name. An unknown name without a default is an
// fperr unresolved-property error.
//
// "${" without a closing brace, and the empty placeholder "${}", are
// copied literally.
type Replacer struct {
	resolver Resolver
}

// NewReplacer returns a Replacer for resolver. A nil resolver knows no names.
func NewReplacer(resolver Resolver) *Replacer {
	if resolver == nil {
		resolver = Map(nil)
	}
	return &Replacer{resolver: resolver}
}

// Replace returns s with all placeholders substituted.
func (r *Replacer) Replace(s string) (string, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			break
		}
		end := strings.IndexByte(s[start+2:], '}')
		if end < 0 {
			break
		}
		end += start + 2
		b.WriteString(s[:start])

		expr := s[start+2 : end]
		if expr == "" {
			b.WriteString("${}")
		} else {
			v, err := r.resolve(expr)
			if err != nil {
				return "", err
			}
			b.WriteString(v)
		}
		s = s[end+1:]
	}
	b.WriteString(s)
	return b.String(), nil
}

func (r *Replacer) resolve(expr string) (string, error) {
	name, def, hasDefault := strings.Cut(expr, ":")
	if v, ok := r.resolver.Resolve(name); ok {
		return v, nil
	}
	if hasDefault {
		return def, nil
	}
	return "", errors.WithStack(fperr.UnresolvedProperty(name))
}
