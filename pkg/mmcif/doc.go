// Package mmcif writes structures in mmcif format. Only the atom_site
// category is written.
//
// There are two steps. First every atom is turned into an AtomSite
// record, a fixed row of strings. Then the records are written as a
// loop. Every column is padded to the width of its widest value, so
// the whole record set has to be in memory before the first row can
// be written.
//
// Notes about the mmcif format...
// A question mark, ?, means a missing value.
// A dot, ., means not appropriate or deliberately left out. We use it
// for atoms without an alternate location.
//
// Quoting follows a subset of the STAR rules from
// https://www.iucr.org/resources/cif/spec/version1.1/cifsyntax
// A value with a single quote goes in double quotes. A value with a
// space goes in single quotes. A value with both a space and a single
// quote is double quoted, which breaks if the value also has a double
// quote followed by a space. We log a warning for these. Values over
// more than one line would need ;-delimited text fields. These are not
// written. Such values are logged and written as they are. Only a
// space triggers quoting, so a value holding a tab is written bare
// and will be read back as two values.
package mmcif
