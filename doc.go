/* Package main: MSPL -- a most simple programming language

MSPL is a tiny stack language: a program is whitespace-delimited words, read
left to right. Integer literals push themselves onto the value stack; the
arithmetic words + - * pop two values and push the result; an if pops a
condition and skips forward to its matching endif when the condition is zero;
everything after // on a line is a comment.

	34 35 +          // leaves 69 on the stack
	1 0 if 10 endif  // condition is 0, block skipped, leaves 1

The pipeline has three stages, run in strict sequence.

Tokenizing (scan.go) splits source lines into located, classified tokens.
Each token carries the file name plus the 1-based line and column where it
started, so every later diagnostic can point back into the source.

Parsing (parse.go) consumes the tokens in order and emits a dense, 0-indexed
operator sequence, the Source. Forward jumps are resolved at parse time by
backpatching: an if's jump target is unknown when the if is emitted, so its
address goes onto a pending-block stack; the matching endif pops it and
writes the target in. An endif that pops nothing, or pops a block that is
not an if, is a structure error; so is any block still pending at end of
input.

Interpretation (interp.go) executes the resolved Source on an explicit
integer value stack driven by a program counter. Since no construct makes a
backward jump, every run halts in at most one step per operator.

A fourth, read-only consumer (graph.go) renders a parsed Source as a
graphviz control flow description, one node per operator, with an if's
true/false edges made explicit.

The gomspl command runs a source file, renders its control flow graph under
-graph, or drops into a line-edited REPL when given no file.
*/
package main
