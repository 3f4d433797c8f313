// Package cmd contains supporting code for the command-line utilities of classy, such as loading data sets
// from disk.
package cmd
