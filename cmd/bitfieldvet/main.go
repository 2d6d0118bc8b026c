// Command bitfieldvet runs the bitfieldcheck analyzer.
//
//	go vet -vettool=$(which bitfieldvet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"Bitfield/analysis/bitfieldcheck"
)

func main() {
	singlechecker.Main(bitfieldcheck.Analyzer)
}
