package shell

import (
	"regexp"
	"strings"
)

// Invocation is the structured form of one command segment, ready for
// dispatch. Flags and Args keep the order they appeared in the input.
type Invocation struct {
	// Name is the command name, always lowercase.
	Name string
	// Flags holds each flag as written, e.g. "-l" or "--recursive".
	// Combined short flags are expanded, so "-la" becomes "-l", "-a".
	Flags []string
	// Args holds the positional arguments.
	Args []string
}

var (
	longFlagPattern  = regexp.MustCompile(`^--[A-Za-z-]+$`)
	shortFlagPattern = regexp.MustCompile(`^-[A-Za-z]+$`)
)

// BuildInvocation tokenizes one segment and builds its Invocation.
// Returns ErrEmptyCommand when the segment holds no words.
func BuildInvocation(segment string) (Invocation, error) {
	tokens, err := Tokenize(segment)
	if err != nil {
		return Invocation{}, err
	}
	return Classify(tokens)
}

// Classify separates a token sequence into a command name, flags and
// positional arguments.
//
// Tokens are scanned left to right: a token matching a flag pattern is a
// flag only while no positional argument has been seen. Classification
// freezes at the first positional token; everything after it stays
// positional even when it starts with a dash. A bare "-" or "--" matches
// neither pattern and is always positional.
func Classify(tokens []string) (Invocation, error) {
	if len(tokens) == 0 {
		return Invocation{}, ErrEmptyCommand
	}

	inv := Invocation{Name: strings.ToLower(tokens[0])}

	sawArg := false
	for _, token := range tokens[1:] {
		switch {
		case sawArg:
			inv.Args = append(inv.Args, token)
		case longFlagPattern.MatchString(token):
			inv.Flags = append(inv.Flags, token)
		case shortFlagPattern.MatchString(token):
			for _, c := range token[1:] {
				inv.Flags = append(inv.Flags, "-"+string(c))
			}
		default:
			sawArg = true
			inv.Args = append(inv.Args, token)
		}
	}

	return inv, nil
}
