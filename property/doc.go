// Package property resolves ${name} placeholders in feature pack descriptors.
//
// A Resolver supplies values by name. Hosts pick one or combine several
// with Chain: a Map, the process environment (Env), a Java properties
// file (LoadPropertiesFile) or a viper configuration (Viper).
//
// A Replacer performs the substitution. It is owned by a single parser
// and shared with that parser's sub-parsers.
package property
