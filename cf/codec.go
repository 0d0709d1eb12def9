package cf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// bracketed matches the mandatory "[" content "]" wrap of the text form.
var bracketed = regexp.MustCompile(`^\[([^\[\]]+)\]$`)

// String renders c as "[a0; a1; …; an]". When c is periodic the first term
// of the tail is preceded by "(" and the closing is ")]":
//
//	[1; (2)]        √2
//	[3; 7; 16]      355/113
//	[(5)]           5, 5, 5, …
func (c *ContinuedFraction) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range c.Terms() {
		switch {
		case c.IsPeriodic() && i == len(c.prefix) && i == 0:
			sb.WriteByte('(')
		case c.IsPeriodic() && i == len(c.prefix):
			sb.WriteString("; (")
		case i > 0:
			sb.WriteString("; ")
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	if c.IsPeriodic() {
		sb.WriteString(")]")
	} else {
		sb.WriteByte(']')
	}

	return sb.String()
}

// Parse reads the text form "[a0; a1; …]".
//
// The whole input must be wrapped in one pair of brackets and start with a
// readable integer, otherwise the error matches ErrInvalidFormat. After the
// first integer, each further term is a ';' or ',' followed by an integer;
// reading stops quietly at the first token that does not fit. The comma is an
// extra separator accepted on input only; String writes semicolons and a
// strict semicolon-only reader would stop at it. Parentheses are
// not understood, so the periodic form written by String reads back as its
// prefix only ("[1; (2)]" → [1]).
func Parse(s string) (*ContinuedFraction, error) {
	terms, err := parseTerms(s)
	if err != nil {
		return nil, err
	}

	return New(terms...), nil
}

// SetString sets c to the value of s and returns c. On error c is unchanged.
func (c *ContinuedFraction) SetString(s string) (*ContinuedFraction, error) {
	terms, err := parseTerms(s)
	if err != nil {
		return c, err
	}

	return c.SetTerms(terms...), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c *ContinuedFraction) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error c is unchanged.
func (c *ContinuedFraction) UnmarshalText(text []byte) error {
	_, err := c.SetString(string(text))

	return err
}

// WriteTo writes the text form of c to w. It implements io.WriterTo.
func (c *ContinuedFraction) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())

	return int64(n), err
}

// Write writes the text form of c to w, without a trailing newline.
func Write(w io.Writer, c *ContinuedFraction) error {
	_, err := c.WriteTo(w)

	return err
}

// Read reads one line from r and parses it with Parse. The line terminator
// ("\n" or "\r\n") is not part of the value.
//
// When r is a *bufio.Reader it is used directly, so successive calls read
// successive lines; any other reader is wrapped and may be read past the
// line. Read returns io.EOF when r is exhausted before any byte is read.
func Read(r io.Reader) (*ContinuedFraction, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, err
	}
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

	return Parse(line)
}

// parseTerms tokenizes the text form without normalizing it.
func parseTerms(s string) ([]int64, error) {
	m := bracketed.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q is not wrapped in a single pair of brackets", ErrInvalidFormat, s)
	}

	sc := termScanner{src: m[1]}
	first, ok := sc.integer()
	if !ok {
		return nil, fmt.Errorf("%w: unreadable leading coefficient in %q", ErrInvalidFormat, s)
	}

	terms := []int64{first}
	for sc.separator() {
		v, ok := sc.integer()
		if !ok {
			break
		}
		terms = append(terms, v)
	}

	return terms, nil
}

// termScanner walks the inside of the brackets byte by byte.
type termScanner struct {
	src string
	pos int
}

func (s *termScanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			s.pos++
		default:
			return
		}
	}
}

// separator consumes one ';' or ',' after optional space.
func (s *termScanner) separator() bool {
	s.skipSpace()
	if s.pos < len(s.src) && (s.src[s.pos] == ';' || s.src[s.pos] == ',') {
		s.pos++
		return true
	}

	return false
}

// integer consumes an optionally signed decimal int64 after optional space.
// On failure the position is restored.
func (s *termScanner) integer() (int64, bool) {
	s.skipSpace()
	start := s.pos
	if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
		s.pos++
	}
	digits := s.pos
	for s.pos < len(s.src) && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == digits {
		s.pos = start
		return 0, false
	}

	v, err := strconv.ParseInt(s.src[start:s.pos], 10, 64)
	if err != nil {
		s.pos = start
		return 0, false
	}

	return v, true
}
