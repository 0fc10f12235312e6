package interp

import (
	"fmt"
	"strings"
)

// DefaultMaxArgs is the argument cap used when the configuration doesn't
// provide one.
const DefaultMaxArgs = 64

// pipeToken separates the two stages of a pipeline.
const pipeToken = "|"

// Command is one parsed command: an ordered argument vector whose first
// element names the program or builtin. A Command with no elements is a
// no-op.
type Command []string

// Name returns the program or builtin name, or "" for an empty Command.
func (c Command) Name() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Pipeline is two Commands joined by a single pipe; Producer's stdout feeds
// Consumer's stdin. Both sides are always non-empty.
type Pipeline struct {
	Producer Command
	Consumer Command
}

// Invocation is the parse result of one input line: either a single Command
// (Pipe nil) or a two stage Pipeline (Cmd nil).
type Invocation struct {
	Cmd  Command
	Pipe *Pipeline
}

// ParseError covers every way a line can fail to parse: too many arguments
// or a pipeline with an empty side. Nothing is executed when Parse returns
// one.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string {
	return e.msg
}

func parseErrorf(format string, a ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, a...)}
}

// Parse tokenizes one newline-stripped input line. Tokens are split on
// space, tab and newline with runs collapsed. If the literal "|" token
// appears, the first occurrence is removed and the remaining tokens are
// partitioned around it into a Pipeline; any later "|" is passed through to
// the consumer as an ordinary argument.
//
// A blank line parses to an Invocation holding an empty Command.
func Parse(line string, maxArgs int) (*Invocation, error) {
	if maxArgs <= 0 {
		maxArgs = DefaultMaxArgs
	}

	tokens := strings.Fields(line)
	if len(tokens) > maxArgs {
		return nil, parseErrorf("too many arguments (max %d)", maxArgs)
	}

	for i, tok := range tokens {
		if tok != pipeToken {
			continue
		}

		producer := Command(tokens[:i:i])
		consumer := Command(tokens[i+1:])
		if len(producer) == 0 || len(consumer) == 0 {
			return nil, parseErrorf("usage: cmd1 [args] %s cmd2 [args]", pipeToken)
		}

		return &Invocation{Pipe: &Pipeline{
			Producer: producer,
			Consumer: consumer,
		}}, nil
	}

	return &Invocation{Cmd: Command(tokens)}, nil
}
