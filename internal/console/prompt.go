// filepath: internal/console/prompt.go
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"watchlist/internal/shared"

	"github.com/go-playground/validator/v10"
)

// Prompter reads answers line by line. Every prompt re-asks until the answer
// is acceptable. Once the input is exhausted each prompt returns
// shared.ErrInputClosed.
type Prompter struct {
	reader   *bufio.Reader
	out      io.Writer
	validate *validator.Validate
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		reader:   bufio.NewReader(in),
		out:      out,
		validate: validator.New(),
	}
}

// ReadLine prints message and returns the next line with surrounding
// whitespace removed. Lines of any length are accepted. A last line without
// a trailing newline is still returned.
func (p *Prompter) ReadLine(message string) (string, error) {
	fmt.Fprint(p.out, message)
	line, err := p.reader.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		fmt.Fprintln(p.out)
		if errors.Is(err, io.EOF) {
			return "", shared.ErrInputClosed
		}
		return "", fmt.Errorf("%w: %v", shared.ErrInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

// PromptNonEmpty asks until a non-blank answer of at most maxLen characters
// is given. A maxLen of zero means no limit.
func (p *Prompter) PromptNonEmpty(message string, maxLen int) (string, error) {
	for {
		value, err := p.ReadLine(message)
		if err != nil {
			return "", err
		}
		if value == "" {
			fmt.Fprintln(p.out, "Input cannot be empty. Try again.")
			continue
		}
		if p.withinLimit(value, maxLen) {
			return value, nil
		}
	}
}

func (p *Prompter) withinLimit(value string, maxLen int) bool {
	if maxLen <= 0 || utf8.RuneCountInString(value) <= maxLen {
		return true
	}
	fmt.Fprintf(p.out, "Input must be at most %d characters. Try again.\n", maxLen)
	return false
}

// PromptInt asks until the answer parses as an integer.
func (p *Prompter) PromptInt(message string) (int, error) {
	return p.promptInt(message, nil, nil)
}

// PromptIntRange asks until the answer is an integer within [lo, hi].
func (p *Prompter) PromptIntRange(message string, lo, hi int) (int, error) {
	return p.promptInt(message, &lo, &hi)
}

func (p *Prompter) promptInt(message string, lo, hi *int) (int, error) {
	for {
		value, err := p.ReadLine(message)
		if err != nil {
			return 0, err
		}
		number, err := strconv.Atoi(value)
		if err != nil {
			fmt.Fprintln(p.out, "Enter a valid integer.")
			continue
		}
		if lo != nil && number < *lo {
			fmt.Fprintf(p.out, "Value must be ≥ %d\n", *lo)
			continue
		}
		if hi != nil && number > *hi {
			fmt.Fprintf(p.out, "Value must be ≤ %d\n", *hi)
			continue
		}
		return number, nil
	}
}

// PromptOptional returns nil for a blank answer and re-asks when the answer
// is longer than maxLen characters.
func (p *Prompter) PromptOptional(message string, maxLen int) (*string, error) {
	for {
		value, err := p.ReadLine(message)
		if err != nil || value == "" {
			return nil, err
		}
		if p.withinLimit(value, maxLen) {
			return &value, nil
		}
	}
}

// PromptOptionalEmail is PromptOptional that re-asks on a malformed address.
func (p *Prompter) PromptOptionalEmail(message string, maxLen int) (*string, error) {
	for {
		value, err := p.PromptOptional(message, maxLen)
		if err != nil || value == nil {
			return nil, err
		}
		if p.validate.Var(*value, "email") == nil {
			return value, nil
		}
		fmt.Fprintln(p.out, "Invalid email format. Try again.")
	}
}

// ChooseFromList shows labels as a numbered table and returns the chosen
// index. Answering 0 skips, reported as ok == false.
func (p *Prompter) ChooseFromList(labels []string) (index int, ok bool, err error) {
	if len(labels) == 0 {
		fmt.Fprintln(p.out, "Nothing to choose from.")
		return -1, false, nil
	}

	rows := make([][]string, 0, len(labels))
	for i, label := range labels {
		rows = append(rows, []string{strconv.Itoa(i + 1), label})
	}
	renderTable(p.out, []string{"#", "Choice"}, rows)
	fmt.Fprintln(p.out, "0. Skip")

	choice, err := p.PromptIntRange("Select: ", 0, len(labels))
	if err != nil {
		return -1, false, err
	}
	if choice == 0 {
		return -1, false, nil
	}
	return choice - 1, true, nil
}
