package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII names display correctly
	// on terminals that do not advertise a charset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fbrowse: %v\n", err)
		os.Exit(1)
	}
}
