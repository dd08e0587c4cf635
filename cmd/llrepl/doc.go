/*
Command llrepl is an interactive shell for experimenting with FIRST- and
FOLLOW-sets of small context-free grammars.

Users enter grammar rules symbol by symbol (no grammar-file syntax is
parsed; symbol classes are derived from the case convention of the names)
and query the resulting analysis:

    llrepl> rule S A a
    llrepl> rule A b
    llrepl> rule A
    llrepl> table

A small demo grammar is preloaded. Quit with <ctrl>D.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lltab.repl'.
func tracer() tracing.Trace {
	return tracing.Select("lltab.repl")
}
