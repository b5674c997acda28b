/*
Package parsers reads the nested regions of a feature pack descriptor
which have a grammar and model of their own: server configuration files
(<config>), artifact copies (<copy-artifacts>), file permissions
(<file-permissions>) and the file filters (<filter>) the latter two share.

Each parser is bound to one schema namespace and one property.Replacer.
Its Parse method is called with the region's start tag already consumed
and reads through the matching end tag, mutating the target model it is
given. Every attribute value is property substituted; unknown elements
and attributes are fperr unexpected-content errors.
*/
package parsers
