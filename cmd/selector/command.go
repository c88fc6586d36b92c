package main

import (
	"fmt"
	"strconv"
	"strings"
)

type op int

const (
	opSkip op = iota
	opClassify
	opSuggest
	opCancel
)

type command struct {
	op    op
	start int
	end   int
	text  string
}

// parseCommand reads one input line:
//
//	start end text          classify the selection
//	?suggest start end text suggest a better span, then classify
//	!cancel                 cancel everything in flight
func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "" || strings.HasPrefix(line, "#"):
		return command{op: opSkip}, nil
	case line == "!cancel":
		return command{op: opCancel}, nil
	case strings.HasPrefix(line, "?suggest "):
		cmd, err := parseSelection(strings.TrimPrefix(line, "?suggest "))
		cmd.op = opSuggest
		return cmd, err
	default:
		cmd, err := parseSelection(line)
		cmd.op = opClassify
		return cmd, err
	}
}

func parseSelection(s string) (command, error) {
	parts := strings.SplitN(strings.TrimSpace(s), " ", 3)
	if len(parts) != 3 {
		return command{}, fmt.Errorf("expected \"start end text\", got %q", s)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return command{}, fmt.Errorf("invalid start %q: %w", parts[0], err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return command{}, fmt.Errorf("invalid end %q: %w", parts[1], err)
	}
	return command{start: start, end: end, text: parts[2]}, nil
}
