package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected command
		wantErr  bool
	}{
		{name: "blank", line: "   ", expected: command{op: opSkip}},
		{name: "comment", line: "# nothing", expected: command{op: opSkip}},
		{name: "cancel", line: "!cancel", expected: command{op: opCancel}},
		{name: "classify", line: "0 5 hello world", expected: command{op: opClassify, start: 0, end: 5, text: "hello world"}},
		{name: "suggest", line: "?suggest 11 15 I love New York", expected: command{op: opSuggest, start: 11, end: 15, text: "I love New York"}},
		{name: "missing text", line: "0 5", wantErr: true},
		{name: "bad start", line: "a 5 hello", wantErr: true},
		{name: "bad end", line: "?suggest 0 b hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			cmd, err := parseCommand(tt.line)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, cmd)
		})
	}
}
