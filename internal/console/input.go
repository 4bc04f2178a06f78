// Package console reads operator input from a text stream the way a
// terminal prompt would: one non-blank character for confirmations and one
// whitespace-delimited token for free text.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/hackgods/hospital-management/internal/hospital"
)

const (
	PromptConfirm = "Do you want to insert new data? (y/n): "
	PromptName    = "Enter patient's name: "
	PromptRecord  = "Enter patient's medical record: "
)

// ErrNoInput is returned when the stream ends before a token is read.
var ErrNoInput = errors.New("no input")

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

var _ hospital.DataInput = (*Console)(nil)

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// AskForData consumes only the first non-blank character, so "yes" leaves
// "es" in the stream for the next read. End of stream counts as no.
func (c *Console) AskForData() bool {
	c.prompt(PromptConfirm)
	b, err := c.readChar()
	if err != nil {
		return false
	}
	return b == 'y' || b == 'Y'
}

func (c *Console) ReadName() (string, error) {
	c.prompt(PromptName)
	return c.readToken()
}

// InputData appends nothing when the stream ends before a record; the
// caller decides whether the patient is still registered.
func (c *Console) InputData(p *hospital.Patient) error {
	c.prompt(PromptRecord)
	record, err := c.readToken()
	if err != nil {
		return err
	}
	p.AddMedicalRecord(record)
	return nil
}

func (c *Console) prompt(text string) {
	// prompt failures surface as missing input on the next read
	_, _ = io.WriteString(c.out, text)
}

// isSpace matches ASCII whitespace only. Other bytes, including UTF-8
// sequences for non-breaking spaces, belong to tokens.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (c *Console) skipSpace() error {
	for {
		b, err := c.in.ReadByte()
		if err != nil {
			return c.readErr(err)
		}
		if !isSpace(b) {
			return c.in.UnreadByte()
		}
	}
}

func (c *Console) readChar() (byte, error) {
	if err := c.skipSpace(); err != nil {
		return 0, err
	}
	b, err := c.in.ReadByte()
	if err != nil {
		return 0, c.readErr(err)
	}
	return b, nil
}

// readToken returns the raw bytes up to the next separator, without decoding.
func (c *Console) readToken() (string, error) {
	if err := c.skipSpace(); err != nil {
		return "", err
	}
	var token []byte
	for {
		b, err := c.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", c.readErr(err)
		}
		if isSpace(b) {
			break
		}
		token = append(token, b)
	}
	return string(token), nil
}

func (c *Console) readErr(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrNoInput
	}
	return fmt.Errorf("read input: %w", err)
}
