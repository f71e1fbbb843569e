// Package cli builds the j2render command line.
package cli
