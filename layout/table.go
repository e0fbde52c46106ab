package layout

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	ErrTypeMismatch = errors.New("record type does not match table")
	ErrTruncated    = errors.New("table is not a whole number of records")
)

// maxTableBytes bounds the decompressed size of a table.
const maxTableBytes = 64 << 20

var (
	zstdEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	})
	zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxTableBytes))
	})
)

// Table holds records of one struct type back to back, so record i starts
// at i*RecordSize. It is not safe for concurrent mutation.
type Table struct {
	codec *Codec
	typ   reflect.Type
	size  int
	data  []byte
}

// NewTable returns an empty table for records of proto's struct type.
func (c *Codec) NewTable(proto any) (*Table, error) {
	return c.LoadTable(proto, nil)
}

// LoadTable wraps data, a sequence of encoded records, as a table. The table
// aliases data; records are validated when read.
func (c *Codec) LoadTable(proto any, data []byte) (*Table, error) {
	v, err := structValue(proto)
	if err != nil {
		return nil, err
	}
	p, err := c.getPlan(v.Type())
	if err != nil {
		return nil, err
	}
	if p.size == 0 {
		return nil, fmt.Errorf("%s has no encodable fields: %w", v.Type(), ErrUnsupported)
	}
	if len(data)%p.size != 0 {
		return nil, fmt.Errorf("%d bytes, record size %d: %w", len(data), p.size, ErrTruncated)
	}
	// Appends must not reach into the caller's spare capacity.
	data = data[:len(data):len(data)]
	return &Table{codec: c, typ: v.Type(), size: p.size, data: data}, nil
}

// DecompressTable is LoadTable for a frame produced by Table.Compress.
func (c *Codec) DecompressTable(proto any, frame []byte) (*Table, error) {
	dec, err := zstdDecoder()
	if err != nil {
		return nil, err
	}
	data, err := dec.DecodeAll(frame, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress table: %w", err)
	}
	return c.LoadTable(proto, data)
}

// RecordSize returns the width of one record.
func (t *Table) RecordSize() int { return t.size }

// Len returns the number of records.
func (t *Table) Len() int { return len(t.data) / t.size }

// Bytes returns the records back to back. The slice aliases the table.
func (t *Table) Bytes() []byte { return t.data }

// Append encodes v, which must have the table's record type, as a new
// record.
func (t *Table) Append(v any) error {
	sv, err := structValue(v)
	if err != nil {
		return err
	}
	if sv.Type() != t.typ {
		return fmt.Errorf("%s into table of %s: %w", sv.Type(), t.typ, ErrTypeMismatch)
	}
	data, err := t.codec.Append(t.data, v)
	if err != nil {
		return err
	}
	t.data = data
	return nil
}

// Record returns the raw bytes of record i. The slice aliases the table.
func (t *Table) Record(i int) ([]byte, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("record %d of %d: %w", i, t.Len(), ErrShortBuffer)
	}
	return t.data[i*t.size : (i+1)*t.size : (i+1)*t.size], nil
}

// At decodes record i into out.
func (t *Table) At(i int, out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPtr
	}
	if v.Elem().Type() != t.typ {
		return fmt.Errorf("%s from table of %s: %w", v.Elem().Type(), t.typ, ErrTypeMismatch)
	}
	rec, err := t.Record(i)
	if err != nil {
		return err
	}
	return t.codec.Decode(rec, out)
}

// Compress returns the records as a single zstd frame.
func (t *Table) Compress() ([]byte, error) {
	enc, err := zstdEncoder()
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(t.data, nil), nil
}
