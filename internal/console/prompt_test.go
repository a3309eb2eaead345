// filepath: internal/console/prompt_test.go
package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"watchlist/internal/shared"

	"github.com/stretchr/testify/assert"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestPromptNonEmpty(t *testing.T) {
	p, out := newTestPrompter("\n   \n  Dune \n")

	value, err := p.PromptNonEmpty("Movie title: ", 0)
	assert.NoError(t, err)
	assert.Equal(t, "Dune", value)
	assert.Equal(t, 2, strings.Count(out.String(), "Input cannot be empty. Try again."))
}

func TestPromptNonEmpty_MaxLength(t *testing.T) {
	p, out := newTestPrompter(strings.Repeat("a", 81) + "\n" + strings.Repeat("ż", 80) + "\n")

	value, err := p.PromptNonEmpty("Username: ", 80)
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("ż", 80), value, "limit counts characters, not bytes")
	assert.Equal(t, 1, strings.Count(out.String(), "Input must be at most 80 characters. Try again."))
}

func TestReadLine_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	p, _ := newTestPrompter(long + "\nDune\n")

	value, err := p.ReadLine("Movie title: ")
	assert.NoError(t, err)
	assert.Equal(t, long, value)

	p, out := newTestPrompter(long + "\nDune\n")
	value, err = p.PromptNonEmpty("Movie title: ", 200)
	assert.NoError(t, err)
	assert.Equal(t, "Dune", value)
	assert.Contains(t, out.String(), "Input must be at most 200 characters. Try again.")
}

func TestReadLine_LastLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter("0")

	value, err := p.ReadLine("Choose an option: ")
	assert.NoError(t, err)
	assert.Equal(t, "0", value)

	_, err = p.ReadLine("Choose an option: ")
	assert.True(t, errors.Is(err, shared.ErrInputClosed))
}

func TestPromptIntRange(t *testing.T) {
	p, out := newTestPrompter("abc\n0\n9\n3\n")

	value, err := p.PromptIntRange("Rating (1-5): ", 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, 3, value)
	assert.Contains(t, out.String(), "Enter a valid integer.")
	assert.Contains(t, out.String(), "Value must be ≥ 1")
	assert.Contains(t, out.String(), "Value must be ≤ 5")
}

func TestPromptInt_Unbounded(t *testing.T) {
	p, _ := newTestPrompter("-12\n")

	value, err := p.PromptInt("Enter movie ID to delete: ")
	assert.NoError(t, err)
	assert.Equal(t, -12, value)
}

func TestPromptOptional(t *testing.T) {
	p, _ := newTestPrompter("\nnice one\n")

	value, err := p.PromptOptional("Comment: ", 0)
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = p.PromptOptional("Comment: ", 0)
	assert.NoError(t, err)
	if assert.NotNil(t, value) {
		assert.Equal(t, "nice one", *value)
	}
}

func TestPromptOptional_MaxLength(t *testing.T) {
	p, out := newTestPrompter(strings.Repeat("c", 501) + "\nshort\n")

	value, err := p.PromptOptional("Comment: ", 500)
	assert.NoError(t, err)
	if assert.NotNil(t, value) {
		assert.Equal(t, "short", *value)
	}
	assert.Contains(t, out.String(), "Input must be at most 500 characters. Try again.")
}

func TestPromptOptionalEmail(t *testing.T) {
	p, out := newTestPrompter("not-an-email\nada@example.com\n")

	value, err := p.PromptOptionalEmail("Email (optional): ", 255)
	assert.NoError(t, err)
	if assert.NotNil(t, value) {
		assert.Equal(t, "ada@example.com", *value)
	}
	assert.Contains(t, out.String(), "Invalid email format. Try again.")
}

func TestPrompt_InputClosed(t *testing.T) {
	p, _ := newTestPrompter("\n")

	_, err := p.PromptNonEmpty("Username: ", 80)
	assert.True(t, errors.Is(err, shared.ErrInputClosed))

	_, err = p.PromptInt("Select: ")
	assert.True(t, errors.Is(err, shared.ErrInputClosed))
}

func TestChooseFromList(t *testing.T) {
	t.Run("Pick", func(t *testing.T) {
		p, out := newTestPrompter("2\n")
		index, ok, err := p.ChooseFromList([]string{"ada (id=1)", "bob (id=2)"})
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, index)
		assert.Contains(t, out.String(), "bob (id=2)")
		assert.Contains(t, out.String(), "0. Skip")
	})

	t.Run("Skip", func(t *testing.T) {
		p, _ := newTestPrompter("0\n")
		_, ok, err := p.ChooseFromList([]string{"ada (id=1)"})
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		p, out := newTestPrompter("5\n1\n")
		index, ok, err := p.ChooseFromList([]string{"ada (id=1)"})
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 0, index)
		assert.Contains(t, out.String(), "Value must be ≤ 1")
	})

	t.Run("Empty", func(t *testing.T) {
		p, out := newTestPrompter("")
		_, ok, err := p.ChooseFromList(nil)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, out.String(), "Nothing to choose from.")
	})
}

func TestRenderTable(t *testing.T) {
	out := &bytes.Buffer{}
	renderTable(out, []string{"ID", "Title", "Genre"}, [][]string{{"1", "Dune", "Sci-Fi"}, {"2", "Heat", absent}})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Title")
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "Dune")
	assert.Contains(t, lines[3], "Heat")
	assert.True(t, strings.HasPrefix(lines[2], "|"))
}
