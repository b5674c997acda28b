// Package model holds the in-memory form of a feature pack build
// descriptor: the FeaturePackDescription and the configuration, copy
// artifact and file permission models filled in by their sub-parsers.
package model
