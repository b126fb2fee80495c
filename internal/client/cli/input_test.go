package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello  \n"))

	got, err := GetSimpleText(r, "Say something:", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Contains(t, out.String(), "Say something:")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := GetSimpleText(r, "Prompt:", &out)
	require.NoError(t, err)
	assert.Equal(t, "no-newline", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func() ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Contains(t, out.String(), "Enter password:")
}

func TestGetFieldWithDefault(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		current string
		want    string
	}{
		{"empty keeps current", "\n", "Jane", "Jane"},
		{"value replaces current", "Janet\n", "Jane", "Janet"},
		{"value without default", "Jane\n", "", "Jane"},
		{"whitespace only keeps current", "   \n", "Jane", "Jane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := bufio.NewReader(strings.NewReader(tt.input))
			got, err := GetFieldWithDefault(r, &out, "First Name", tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFieldWithDefault_ShowsCurrentValue(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))
	_, err := GetFieldWithDefault(r, &out, "First Name", "Jane")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "First Name [Jane]:")
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		r := bufio.NewReader(strings.NewReader(tt.input))
		assert.Equal(t, tt.want, AskYesNo(r, &out, "Sure?"), "input %q", tt.input)
	}
}
