package javascript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasExtension(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		path string
		want bool
	}{
		{"main.js", true},
		{"src/App.JSX", true},
		{"lib/index.mjs", true},
		{"config.cjs", true},
		{"types.ts", false},
		{"README.md", false},
		{"js", false},
		{"", false},
	}
	for _, tt := range tests {
		req.Equal(tt.want, HasExtension(tt.path, Extensions), "HasExtension(%q)", tt.path)
	}
}

func TestCommentText(t *testing.T) {
	req := require.New(t)

	text, line := commentText("// -- Private Methods ----")
	req.True(line)
	req.Equal(" -- Private Methods ----", text)

	text, line = commentText("/* section comment */")
	req.False(line)
	req.Equal(" section comment ", text)

	req.Equal("", unquote(`''`))
	req.Equal("./bar", unquote(`"./bar"`))
}
