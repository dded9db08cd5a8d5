// Package prefs holds the in-memory font preferences decoded from a fonts.conf
// document and regenerates the document from them.
//
// A Model is built from a parsed document in one pass: every top-level rule is
// classified, recognized rules populate the model and everything else is
// dropped. The rule-free remainder of the document (prolog, <dir>, <include>
// and friends) is kept as a skeleton, and Document appends freshly encoded
// rules to a copy of it. Rules are never edited in place.
//
// Store ties a Model to a file: first-use setup, legacy migration, recovery
// from a corrupt file and atomic saves.
package prefs
