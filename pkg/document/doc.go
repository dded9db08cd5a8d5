// Package document loads and writes fontconfig XML files.
//
// A document is held as an etree tree. Loading is tolerant of the
// fonts.dtd DOCTYPE reference that almost every fonts.conf carries even
// though the DTD itself is rarely installed; any other external reference
// must actually be readable. Writing always goes through a temporary file
// and a rename so an interrupted save never leaves a truncated fonts.conf.
package document
