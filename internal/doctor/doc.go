// Package doctor runs environment and connectivity diagnostics.
//
// Unlike normal commands, which fail fast on the first classified error, the
// doctor deliberately continues past individual failures so a single run
// reports every problem: runtime, configured paths, stored credentials,
// token refresh, and one bounded API call.
package doctor
