package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"foodscraper/pkg/categories"
)

// Prompter runs the interactive category selection dialog.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ChooseCategories asks whether to scrape every category or a single one,
// and returns the chosen list.
func (p *Prompter) ChooseCategories() ([]string, error) {
	fmt.Fprintln(p.out, Cyan("What would you like to download?"))
	fmt.Fprintln(p.out, "  1) All food categories")
	fmt.Fprintln(p.out, "  2) A single category")
	fmt.Fprint(p.out, "Choice [1/2]: ")

	choice, err := p.readLine()
	if err != nil {
		return nil, err
	}

	switch choice {
	case "", "1":
		return categories.All(), nil
	case "2":
		return p.chooseSingle()
	default:
		return nil, fmt.Errorf("invalid choice %q, expected 1 or 2", choice)
	}
}

// chooseSingle lists the known categories and reads one by number or name.
// Names outside the list are accepted as custom search terms.
func (p *Prompter) chooseSingle() ([]string, error) {
	fmt.Fprintln(p.out)
	for i, name := range categories.All() {
		fmt.Fprintf(p.out, "  %2d) %s\n", i+1, name)
	}
	fmt.Fprint(p.out, "Category number or name: ")

	input, err := p.readLine()
	if err != nil {
		return nil, err
	}

	category, err := categories.Resolve(input)
	if err != nil {
		return nil, err
	}
	return []string{category}, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
