package property

import (
	"os"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Resolver maps a property name to its replacement value.
//
// Resolvers are only read from once constructed; implementations must be
// safe for concurrent use by several parsers.
type Resolver interface {
	Resolve(name string) (string, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (string, bool)

func (f ResolverFunc) Resolve(name string) (string, bool) { return f(name) }

// Map is a map backed Resolver.
type Map map[string]string

func (m Map) Resolve(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Env resolves properties from the process environment.
var Env Resolver = ResolverFunc(os.LookupEnv)

// Chain is a Resolver consulting each of its resolvers in turn. The
// first resolver knowing the name provides the value.
type Chain []Resolver

func (c Chain) Resolve(name string) (string, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if v, ok := r.Resolve(name); ok {
			return v, true
		}
	}
	return "", false
}

// Properties is a Resolver backed by a Java properties table.
type Properties struct {
	p *properties.Properties
}

func (p Properties) Resolve(name string) (string, bool) { return p.p.Get(name) }

// Keys returns the property names in the table, in file order.
func (p Properties) Keys() []string { return p.p.Keys() }

var loader = properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}

// LoadPropertiesFile reads a UTF-8 Java properties file.
//
// Values are kept verbatim; ${...} references inside the file are resolved,
// if at all, by the Replacer using this table.
func LoadPropertiesFile(path string) (Properties, error) {
	p, err := loader.LoadFile(path)
	if err != nil {
		return Properties{}, errors.Wrapf(err, "loading properties %s", path)
	}
	return Properties{p: p}, nil
}

// LoadPropertiesString parses Java properties from s.
func LoadPropertiesString(s string) (Properties, error) {
	p, err := loader.LoadBytes([]byte(s))
	if err != nil {
		return Properties{}, errors.Wrap(err, "parsing properties")
	}
	return Properties{p: p}, nil
}

// Viper returns a Resolver reading the keys set on v, such as a build
// tool's configuration merged from files, environment and flags.
func Viper(v *viper.Viper) Resolver {
	return ResolverFunc(func(name string) (string, bool) {
		if !v.IsSet(name) {
			return "", false
		}
		return v.GetString(name), true
	})
}
