// Package main provides the resumectl command line tool.
//
// resumectl runs the resume extraction pipeline locally, without the HTTP
// server, and prints one JSON result per input file.
//
// Usage:
//
//	resumectl extract cv.pdf
//	resumectl extract --pretty --progress a.pdf b.pdf
//
// See --help for all available options.
package main

func main() {
	Execute()
}
