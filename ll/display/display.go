/*
Package display renders FIRST/FOLLOW analysis results.

It is a read-only consumer of a FirstFollowTable: nothing in here computes,
validates or mutates grammar information. Output flavours are a plain-text
table for any io.Writer, a console variant and an HTML export.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"

	"github.com/npillmayer/lltab/ll"
)

// tracer traces with key 'lltab.display'.
func tracer() tracing.Trace {
	return tracing.Select("lltab.display")
}

// FprintFirstFollow writes a plain-text table of all FIRST- and FOLLOW-sets
// to w, one row per non-terminal.
func FprintFirstFollow(w io.Writer, t *ll.FirstFollowTable) {
	g := t.Grammar()
	namelen := len("non-terminal")
	firstlen := len("FIRST")
	g.EachNonTerminal(func(name string, N *ll.Symbol) interface{} {
		if len(name) > namelen {
			namelen = len(name)
		}
		if l := len(t.First(N).String()); l > firstlen {
			firstlen = l
		}
		return nil
	})
	fmt.Fprintf(w, "%-*s  %-*s  %s\n", namelen, "non-terminal", firstlen, "FIRST", "FOLLOW")
	g.EachNonTerminal(func(name string, N *ll.Symbol) interface{} {
		fmt.Fprintf(w, "%-*s  %-*s  %s\n", namelen, name,
			firstlen, t.First(N).String(), t.Follow(N).String())
		return nil
	})
}

// FirstFollow prints all FIRST- and FOLLOW-sets of a table to the console,
// with moderately fancy output.
func FirstFollow(t *ll.FirstFollowTable) {
	pterm.Info.Println("FIRST/FOLLOW sets for grammar " + t.Grammar().Name)
	FprintFirstFollow(os.Stdout, t)
}

// FirstFollowAsHTML exports the FIRST- and FOLLOW-sets of a table in
// HTML-format.
func FirstFollowAsHTML(t *ll.FirstFollowTable, w io.Writer) {
	if t == nil {
		tracer().Errorf("no FIRST/FOLLOW table given, cannot export to HTML")
		return
	}
	g := t.Grammar()
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("FIRST/FOLLOW sets for grammar %s<p>", g.Name))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td><td>FIRST</td><td>FOLLOW</td></tr>\n")
	g.EachNonTerminal(func(name string, N *ll.Symbol) interface{} {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", name))
		io.WriteString(w, fmt.Sprintf("<td>%s</td>\n", setAsHTML(t.First(N))))
		io.WriteString(w, fmt.Sprintf("<td>%s</td>\n", setAsHTML(t.Follow(N))))
		io.WriteString(w, "</tr>\n")
		return nil
	})
	io.WriteString(w, "</table></body></html>\n")
}

func setAsHTML(set *ll.SymbolSet) string {
	if set == nil || set.Empty() {
		return "&nbsp;"
	}
	s := ""
	for i, sym := range set.Symbols() {
		if i > 0 {
			s += ", "
		}
		s += sym.Name
	}
	return s
}
