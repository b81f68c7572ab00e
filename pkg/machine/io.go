package machine

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/helixLang/helix/pkg/codon"
)

// InputPort is a lazy finite sequence of 6-bit values. ReadValue returns
// ErrInputExhausted when the sequence ends; the machine turns that, and any
// other read error, into an io fault.
type InputPort interface {
	ReadValue() (int, error)
}

// ErrInputExhausted signals the end of the input sequence.
var ErrInputExhausted = errors.New("input exhausted")

// ValueInput serves a fixed slice of values. Used by tests and the -in flag.
type ValueInput struct {
	values []int
}

func NewValueInput(values ...int) *ValueInput {
	return &ValueInput{values: values}
}

func (p *ValueInput) ReadValue() (int, error) {
	if len(p.values) == 0 {
		return 0, ErrInputExhausted
	}
	v := p.values[0]
	p.values = p.values[1:]
	return v, nil
}

// ReaderInput decodes characters from a reader through the character code.
// Carriage returns are skipped so piped Windows line endings behave.
type ReaderInput struct {
	r *bufio.Reader
}

func NewReaderInput(r io.Reader) *ReaderInput {
	return &ReaderInput{r: bufio.NewReader(r)}
}

func (p *ReaderInput) ReadValue() (int, error) {
	for {
		ch, _, err := p.r.ReadRune()
		if err == io.EOF {
			return 0, ErrInputExhausted
		}
		if err != nil {
			return 0, err
		}
		if ch == '\r' {
			continue
		}
		v, ok := codon.CharValue(ch)
		if !ok {
			return 0, fmt.Errorf("input character %q has no codon value", ch)
		}
		return v, nil
	}
}
