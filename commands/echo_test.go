package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEscapes(t *testing.T) {
	cases := []struct {
		escaped  string
		expected string
		stopped  bool
	}{
		{"not escaped", "not escaped", false},
		{`newline\n`, "newline\n", false},
		{`tab\there`, "tab\there", false},
		{`double-escape\\n`, `double-escape\n`, false},
		{`\a\b\e\f\r\v`, "\a\b\x1b\f\r\v", false},
		{`kept\qverbatim`, `kept\qverbatim`, false},
		{`trailing\`, `trailing\`, false},
		{`stop\chere`, "stop", true},
		{`\c`, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.escaped, func(t *testing.T) {
			actual, stopped := expandEscapes(tc.escaped)

			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, tc.stopped, stopped)
		})
	}
}
