// Package locator normalizes user-supplied Drive resource locators.
//
// A locator is either a bare opaque ID or one of several Drive web URL
// shapes (folder links, file links, open-by-id links, id= query parameters).
// Resolution is pure: no I/O, no state, safe for concurrent use. Malformed
// input fails with an errfmt.InputError so the command boundary can map it
// to the invalid-input exit code.
package locator
