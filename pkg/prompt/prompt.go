package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultMaxAttempts bounds the retry loop of each prompt.
const DefaultMaxAttempts = 5

// Prompter reads validated values from an input stream, re-prompting on
// invalid input up to a bounded number of attempts.
type Prompter struct {
	scanner     *bufio.Scanner
	out         io.Writer
	maxAttempts int
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithMaxAttempts sets how many invalid inputs are tolerated before giving up.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// New creates a Prompter reading from r and writing prompts to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		scanner:     bufio.NewScanner(r),
		out:         w,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// String prompts with label until validate accepts the trimmed input. A nil
// validate accepts anything, including the empty string.
func (p *Prompter) String(label string, validate func(string) error) (string, error) {
	for range p.maxAttempts {
		fmt.Fprint(p.out, label)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", err
			}
			return "", ErrInputClosed
		}
		in := strings.TrimSpace(p.scanner.Text())
		if validate == nil {
			return in, nil
		}
		if err := validate(in); err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			continue
		}
		return in, nil
	}
	return "", ErrTooManyAttempts
}

// Line reads one trimmed line without validation; an empty answer is fine.
func (p *Prompter) Line(label string) (string, error) {
	return p.String(label, nil)
}

// Int prompts until the input parses as an integer within [min, max].
func (p *Prompter) Int(label string, min, max int) (int, error) {
	var value int
	_, err := p.String(label, func(in string) error {
		n, err := strconv.Atoi(in)
		if err != nil {
			return errors.New("that's not a number, try again")
		}
		if n < min || n > max {
			return fmt.Errorf("enter a number between %d and %d", min, max)
		}
		value = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// YesNo prompts until the input reads as yes (y/yes) or no (n/no),
// case-insensitively.
func (p *Prompter) YesNo(label string) (bool, error) {
	var value bool
	_, err := p.String(label+" (y/n): ", func(in string) error {
		switch strings.ToLower(in) {
		case "y", "yes":
			value = true
		case "n", "no":
			value = false
		default:
			return errors.New("please enter y or n")
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return value, nil
}
