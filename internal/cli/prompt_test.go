package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return newPrompter(strings.NewReader(input), out, 0, false), out
}

func TestAsk_RepeatsUntilValid(t *testing.T) {
	p, out := testPrompter("ab\nabc\n")
	got, err := p.Ask(context.Background(), "Name", "", func(s string) error {
		if len(s) < 3 {
			return errors.New("too short")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Name: "))
	assert.Contains(t, out.String(), "too short")
}

func TestAsk_EmptyTakesDefault(t *testing.T) {
	p, out := testPrompter("\n")
	got, err := p.Ask(context.Background(), "Start", "1", nil)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.Contains(t, out.String(), "Start [1]: ")
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	p, _ := testPrompter("tail")
	got, err := p.Ask(context.Background(), "x", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestRead_EOFCancels(t *testing.T) {
	p, _ := testPrompter("")
	_, err := p.Ask(context.Background(), "x", "", nil)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestRead_ContextCancels(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	p := newPrompter(pr, io.Discard, 0, false)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := p.Ask(ctx, "x", "", nil)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestConfirm(t *testing.T) {
	p, _ := testPrompter("maybe\nY\n\nno\n")
	ctx := context.Background()

	yes, err := p.Confirm(ctx, "ok?", false)
	require.NoError(t, err)
	assert.True(t, yes)

	def, err := p.Confirm(ctx, "ok?", true)
	require.NoError(t, err)
	assert.True(t, def)

	no, err := p.Confirm(ctx, "ok?", true)
	require.NoError(t, err)
	assert.False(t, no)
}

func TestChoose(t *testing.T) {
	p, out := testPrompter("7\n2\n")
	idx, err := p.Choose(context.Background(), "Network", []string{"Paseo", "Westend"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "2) Westend")
	assert.Contains(t, out.String(), "1..2")
}

func TestSecret_NoTerminalReadsLine(t *testing.T) {
	p, _ := testPrompter("s3cret\n")
	got, err := p.Secret(context.Background(), "Secret", nil)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
}
