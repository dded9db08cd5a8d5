// Package rules converts between fontconfig rule elements and the font
// preference types.
//
// Three kinds of top-level rule are understood, told apart only by their
// shape:
//
//   - a <match target="font"> rule assigning one global rendering option
//   - a <match> rule testing "family" (and optionally "lang") and editing
//     "family", which becomes a types.Slot
//   - an <alias> rule naming a family and its preferred replacement
//
// Classify walks a document once without modifying it; the Encode functions
// append freshly built rules to a root element.
package rules
