/*
Package fperr defines the errors raised while parsing feature pack descriptors.

Every failure is an *Error carrying a Kind, the offending element and
attribute names where known, and the Location of the tag event that
triggered it. Errors are fatal: parsers stop at the first one and callers
must discard any partially populated description.

Errors are usually returned wrapped with github.com/pkg/errors; use Is
and As to inspect them.
*/
package fperr
