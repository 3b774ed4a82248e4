package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// prompter reads line-oriented answers from the interactive session.
type prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	closed bool
}

func newPrompter(in *bufio.Scanner, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

func (p *prompter) line(label string) string {
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		p.closed = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// closedInput reports whether the input stream has ended.
func (p *prompter) closedInput() bool {
	return p.closed
}

// optional returns nil for blank input.
func (p *prompter) optional(label string) *string {
	s := p.line(label)
	if s == "" {
		return nil
	}
	return &s
}

func (p *prompter) integer(label string) (int, error) {
	s := p.line(label)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

// optionalInteger returns nil for blank input.
func (p *prompter) optionalInteger(label string) (*int, error) {
	s := p.line(label)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a whole number", s)
	}
	return &n, nil
}

func (p *prompter) identifier(label string) (int64, error) {
	s := p.line(label)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid id", s)
	}
	return id, nil
}

func (p *prompter) money(label string) (decimal.Decimal, error) {
	s := strings.TrimPrefix(p.line(label), "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a valid amount", s)
	}
	return d, nil
}

// optionalMoney returns nil for blank input.
func (p *prompter) optionalMoney(label string) (*decimal.Decimal, error) {
	s := strings.TrimPrefix(p.line(label), "$")
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a valid amount", s)
	}
	return &d, nil
}

func (p *prompter) confirm(label string) bool {
	return strings.EqualFold(p.line(label), "y")
}
