// Package solution parses solver output for the network-flow benchmark into
// sparse variable maps.
//
// The format is line oriented. Blank lines and lines starting with '#' are
// skipped. Three directives are recognized, tried in this order:
//
//	z <int>              claimed objective (last one wins)
//	x#<i>#<j> <int>      arc selection,    1 ≤ i,j ≤ n, i ≠ j
//	f#<k>#<i>#<j> <int>  commodity flow,   1 ≤ k,i,j ≤ n, i ≠ j
//
// Any other line is ignored without error, including lines that start like a
// directive but do not match its full shape (for example "x#1#2 abc" or
// "zeta 3"). Only a line that matches a shape but names an index outside the
// bounds fails the parse, with an *IndexError naming the variable. A solution
// that cannot be parsed completely is never returned partially.
package solution
