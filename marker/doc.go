// Package marker finds {{ssot:key.path}} markers in text and substitutes
// their values from the store.
//
// A marker runs from "{{ssot:" to the first following "}}"; the expression
// may not contain "}". Markers with nested braces therefore do not match the
// way an author might expect and must be kept well-formed.
//
// Substitution is a single left-to-right pass. Substituted values are not
// scanned again, so a value that itself looks like a marker stays literal.
package marker
