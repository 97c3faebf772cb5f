// Package locale resolves and inspects BCP 47 locale tags.
//
// It supplies the environment default locale consulted when a site declares
// no locales, and the tag inspection used to flag suspicious entries. Tags
// configured by the user are never rewritten here; canonical forms are only
// used for comparison and display.
package locale
