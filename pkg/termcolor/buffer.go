package termcolor

import "bytes"

// BufferMode selects how a Buffer records style changes.
type BufferMode int

const (
	// PlainBuffer drops style changes.
	PlainBuffer BufferMode = iota
	// AnsiBuffer records style changes as ANSI escape sequences.
	AnsiBuffer
	// MarkupBuffer records style changes as readable tags:
	// "{fg:red bold}" for SetColor and "{/}" for Reset.
	MarkupBuffer
)

// Buffer is an in-memory sink.
type Buffer struct {
	mode BufferMode
	buf  bytes.Buffer
}

var _ WriteColor = (*Buffer)(nil)

func NewBuffer(mode BufferMode) *Buffer {
	return &Buffer{mode: mode}
}

func (b *Buffer) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

func (b *Buffer) SupportsColor() bool {
	return b.mode != PlainBuffer
}

func (b *Buffer) SetColor(spec ColorSpec) error {
	switch b.mode {
	case AnsiBuffer:
		return NewAnsi(&b.buf).SetColor(spec)
	case MarkupBuffer:
		b.buf.WriteString("{" + spec.String() + "}")
	}
	return nil
}

func (b *Buffer) Reset() error {
	switch b.mode {
	case AnsiBuffer:
		return NewAnsi(&b.buf).Reset()
	case MarkupBuffer:
		b.buf.WriteString("{/}")
	}
	return nil
}

// String returns everything written so far.
func (b *Buffer) String() string { return b.buf.String() }

// Bytes returns everything written so far.
func (b *Buffer) Bytes() []byte { return b.buf.Bytes() }

// Clear discards the buffer's contents.
func (b *Buffer) Clear() { b.buf.Reset() }
