package parse

import "github.com/coregx/waverex/internal/graph"

// predefinedSet returns the Set state for one of the single-letter
// predefined character classes. Callers must only pass a byte already
// known to be one of these tokens.
func predefinedSet(tok byte) graph.State {
	switch tok {
	case '_':
		return graph.State{Kind: graph.Set, Str: " \v\b\f\t"}
	case 'a':
		return graph.State{Kind: graph.Set, Str: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"}
	case 'o':
		return graph.State{Kind: graph.Set, Str: "!#$%&()*+,-./:;<=>?@[\\]^`{|}~"}
	case 'n':
		return graph.State{Kind: graph.Set, Str: "0123456789"}
	case 'Q':
		return graph.State{Kind: graph.Set, Str: "\""}
	case 'q':
		return graph.State{Kind: graph.Set, Str: "'"}
	}
	return graph.State{}
}

func isPredefinedSetToken(c byte) bool {
	switch c {
	case '_', 'a', 'o', 'n', 'Q', 'q':
		return true
	}
	return false
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
