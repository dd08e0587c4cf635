/*
Package lltab computes prerequisites for LL(1) parser tables.

LLTAB is a small companion toolbox for top-down parsing. Its center piece
is the static grammar analysis needed before an LL(1) parse table can be
constructed: FIRST- and FOLLOW-sets for every non-terminal of a
context-free grammar. Package structure is as follows:

■ ll: Package ll implements the grammar model, a grammar builder and the
FIRST/FOLLOW analysis.

■ ll/display: Package display renders analysis results for the console and
as HTML. It is a read-only consumer of analysis results.

■ cmd/llrepl: An interactive shell for experimenting with small grammars.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lltab
