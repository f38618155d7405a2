// SPDX-License-Identifier: MIT

// Package render prints any matrix.Matrix as aligned, locale-aware text.
//
// Each cell is formatted through golang.org/x/text/message for the chosen
// language (grouping and decimal separators follow the locale), limited to
// Precision fraction digits. Cells in a column are right-aligned to the widest
// cell; rows end with '\n'.
//
// Options:
//   - WithLanguage(tag): default language.English.
//   - WithPrecision(p):  maximum fraction digits, default 6; negative → ErrBadPrecision.
//   - WithSeparator(s):  text between cells, default two spaces.
//
// Example (English):
//
//	0.75  0.5  0.25
//	 0.5    1   0.5
//	0.25  0.5  0.75
package render
