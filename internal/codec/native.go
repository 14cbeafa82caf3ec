package codec

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/aliskhannn/category-quiz-bot/internal/domain/entities"
)

// ErrMalformedNative is returned for native payloads that cannot be parsed.
var ErrMalformedNative = errors.New("malformed native quiz payload")

// The native form is an ordered sequence of protobuf wire fields. Field
// numbers are positional: the n-th value written carries number n, and the
// reader rejects anything out of sequence.

// NativeWriter appends ordered values to a native payload.
type NativeWriter struct {
	buf  []byte
	next protowire.Number
}

func newNativeWriter() *NativeWriter {
	return &NativeWriter{next: 1}
}

func (w *NativeWriter) tag(typ protowire.Type) {
	w.buf = protowire.AppendTag(w.buf, w.next, typ)
	w.next++
}

// WriteInt appends a signed integer.
func (w *NativeWriter) WriteInt(v int64) {
	w.tag(protowire.VarintType)
	w.buf = protowire.AppendVarint(w.buf, protowire.EncodeZigZag(v))
}

// WriteBool appends a boolean.
func (w *NativeWriter) WriteBool(v bool) {
	w.tag(protowire.VarintType)
	w.buf = protowire.AppendVarint(w.buf, protowire.EncodeBool(v))
}

// WriteString appends a string.
func (w *NativeWriter) WriteString(s string) {
	w.tag(protowire.BytesType)
	w.buf = protowire.AppendString(w.buf, s)
}

// WriteStrings appends a length followed by each string.
func (w *NativeWriter) WriteStrings(ss []string) {
	w.WriteInt(int64(len(ss)))
	for _, s := range ss {
		w.WriteString(s)
	}
}

// Bytes returns the payload written so far.
func (w *NativeWriter) Bytes() []byte {
	return w.buf
}

// NativeReader consumes ordered values from a native payload.
type NativeReader struct {
	buf  []byte
	next protowire.Number
}

func newNativeReader(data []byte) *NativeReader {
	return &NativeReader{buf: data, next: 1}
}

// More reports whether unread values remain.
func (r *NativeReader) More() bool {
	return len(r.buf) > 0
}

func (r *NativeReader) tag(want protowire.Type) error {
	if len(r.buf) == 0 {
		return fmt.Errorf("%w: field %d missing", ErrMalformedNative, r.next)
	}
	num, typ, n := protowire.ConsumeTag(r.buf)
	if n < 0 {
		return fmt.Errorf("%w: %v", ErrMalformedNative, protowire.ParseError(n))
	}
	if num != r.next || typ != want {
		return fmt.Errorf("%w: expected field %d of wire type %d, got field %d of wire type %d",
			ErrMalformedNative, r.next, want, num, typ)
	}
	r.buf = r.buf[n:]
	r.next++
	return nil
}

func (r *NativeReader) varint() (uint64, error) {
	v, n := protowire.ConsumeVarint(r.buf)
	if n < 0 {
		return 0, fmt.Errorf("%w: %v", ErrMalformedNative, protowire.ParseError(n))
	}
	r.buf = r.buf[n:]
	return v, nil
}

// ReadInt reads a signed integer.
func (r *NativeReader) ReadInt() (int64, error) {
	if err := r.tag(protowire.VarintType); err != nil {
		return 0, err
	}
	v, err := r.varint()
	if err != nil {
		return 0, err
	}
	return protowire.DecodeZigZag(v), nil
}

// ReadBool reads a boolean.
func (r *NativeReader) ReadBool() (bool, error) {
	if err := r.tag(protowire.VarintType); err != nil {
		return false, err
	}
	v, err := r.varint()
	if err != nil {
		return false, err
	}
	return protowire.DecodeBool(v), nil
}

// ReadString reads a string.
func (r *NativeReader) ReadString() (string, error) {
	if err := r.tag(protowire.BytesType); err != nil {
		return "", err
	}
	s, n := protowire.ConsumeString(r.buf)
	if n < 0 {
		return "", fmt.Errorf("%w: %v", ErrMalformedNative, protowire.ParseError(n))
	}
	r.buf = r.buf[n:]
	return s, nil
}

// ReadStrings reads a list written by WriteStrings.
func (r *NativeReader) ReadStrings() ([]string, error) {
	n, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > int64(len(r.buf)) {
		return nil, fmt.Errorf("%w: bad list length %d", ErrMalformedNative, n)
	}
	out := make([]string, 0, n)
	for i := int64(0); i < n; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type nativeHeader struct {
	question string
	solved   bool
}

// MarshalNative encodes q as [ordinal, question, solved, variant fields...].
func (r *Registry) MarshalNative(q entities.Quiz) ([]byte, error) {
	v, err := r.Lookup(q.Type())
	if err != nil {
		return nil, err
	}
	w := newNativeWriter()
	w.WriteInt(int64(v.Ordinal))
	w.WriteString(q.Question())
	w.WriteBool(q.Solved())
	if err := v.writeNative(q, w); err != nil {
		return nil, fmt.Errorf("write %s fields: %w", q.Type(), err)
	}
	return w.Bytes(), nil
}

// UnmarshalNative decodes a payload written by MarshalNative. The ordinal
// is resolved first; the variant then consumes its own trailing fields.
func (r *Registry) UnmarshalNative(data []byte) (entities.Quiz, error) {
	rd := newNativeReader(data)
	ordinal, err := rd.ReadInt()
	if err != nil {
		return nil, err
	}
	v, err := r.LookupOrdinal(int(ordinal))
	if err != nil {
		return nil, err
	}
	var h nativeHeader
	if h.question, err = rd.ReadString(); err != nil {
		return nil, err
	}
	if h.solved, err = rd.ReadBool(); err != nil {
		return nil, err
	}
	q, err := v.readNative(h, rd)
	if err != nil {
		return nil, err
	}
	if rd.More() {
		return nil, fmt.Errorf("%w: trailing data after %s fields", ErrMalformedNative, v.Type)
	}
	return q, nil
}
