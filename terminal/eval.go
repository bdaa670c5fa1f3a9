package terminal

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/core/config"
	"github.com/vadiminshakov/factorial/core/tools"
	"github.com/vadiminshakov/factorial/pkg/logging"
)

// ApplyConfig pushes configuration into the tool layer and the logger.
func ApplyConfig(cfg config.Config) error {
	tools.SetMaxInput(cfg.MaxInput)
	tools.SetWorkers(cfg.Workers)
	return logging.SetLevel(cfg.LogLevel)
}

// Evaluate runs one line of input:
//
//	20                    factorial of 20
//	20!                   same
//	factorial 20          same
//	factorial_table 0 10  table from 0! to 10!
//	calc <expr>           arithmetic with factorial(x)
//	<tool>                any other registered tool without arguments
func Evaluate(line string) (string, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", errors.New("empty input")
	}

	name := fields[0]
	if !slices.Contains(tools.List(), name) {
		if len(fields) != 1 {
			return "", errors.Errorf("unknown command %q (type help)", name)
		}
		token := strings.TrimSuffix(name, "!")
		return tools.Execute("factorial", map[string]interface{}{"n": tools.ParseLiteral(token)})
	}

	rest := fields[1:]
	args := map[string]interface{}{}

	switch name {
	case "calc":
		args["expr"] = strings.TrimSpace(strings.TrimPrefix(line, name))

	case "factorial":
		if len(rest) != 1 {
			return "", errors.New("usage: factorial <n>")
		}
		args["n"] = tools.ParseLiteral(rest[0])

	case "factorial_table":
		if len(rest) != 2 {
			return "", errors.New("usage: factorial_table <from> <to>")
		}
		args["from"] = tools.ParseLiteral(rest[0])
		args["to"] = tools.ParseLiteral(rest[1])

	default:
		if len(rest) != 0 {
			return "", errors.Errorf("%s takes no arguments", name)
		}
	}

	return tools.Execute(name, args)
}
