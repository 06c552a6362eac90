// Package outfmt renders uniform result records as a table, JSON, or CSV.
//
// Records are ordered field lists so columns appear in a stable order in
// every format. Rendering returns a string; commands print it to stdout only
// after the remote work has succeeded.
package outfmt
