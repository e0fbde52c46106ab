// Package layout packs structs into fixed-width binary records.
//
// A record is the concatenation of a struct's exported fields in declaration
// order, with no header and no padding. Supported fields are fixed-size
// primitives (bool, sized integers and floats), arrays of those, and any
// type with a fixed binary layout, which is how the microstring types are
// embedded. Because every record of a type has the same width, records can be
// stored back to back and addressed by index.
package layout

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/rawbytedev/microstring/internal/common"
)

var (
	ErrNotStruct    = errors.New("expected struct")
	ErrNotStructPtr = errors.New("expected pointer to struct")
	ErrUnsupported  = errors.New("unsupported type")
	ErrShortBuffer  = errors.New("record too short")
)

// Fixed is implemented by types with a fixed-size binary layout. Decoding
// additionally requires the pointer type to implement
// encoding.BinaryUnmarshaler.
type Fixed interface {
	BinarySize() int
	AppendBinary(b []byte) ([]byte, error)
}

var (
	fixedType       = reflect.TypeFor[Fixed]()
	unmarshalerType = reflect.TypeFor[encoding.BinaryUnmarshaler]()
)

// Options configures a Codec. Bounded fields are byte strings and are
// unaffected by byte order.
type Options struct {
	BigEndian bool // primitives in big-endian order; little-endian otherwise
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Codec encodes and decodes records. Plans are cached per struct type; a
// Codec is safe for concurrent use.
type Codec struct {
	Opts  Options
	order byteOrder
	mu    sync.RWMutex
	plans map[reflect.Type]*plan
}

type plan struct {
	size   int
	fields []fieldInfo
}

type fieldInfo struct {
	idx    int
	name   string
	kind   reflect.Kind
	offset int
	size   int
	fixed  bool         // implements Fixed
	elem   reflect.Kind // element kind of arrays
	count  int          // array length
}

func New(opts Options) *Codec {
	var order byteOrder = binary.LittleEndian
	if opts.BigEndian {
		order = binary.BigEndian
	}
	return &Codec{
		Opts:  opts,
		order: order,
		plans: make(map[reflect.Type]*plan),
	}
}

func (c *Codec) getPlan(t reflect.Type) (*plan, error) {
	c.mu.RLock()
	if p, ok := c.plans[t]; ok {
		c.mu.RUnlock()
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check
	if p, ok := c.plans[t]; ok {
		return p, nil
	}

	p := &plan{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		info, err := fieldPlan(sf)
		if err != nil {
			return nil, err
		}
		info.idx = i
		info.offset = p.size
		p.size += info.size
		p.fields = append(p.fields, info)
	}
	c.plans[t] = p
	return p, nil
}

func fieldPlan(sf reflect.StructField) (fieldInfo, error) {
	ft := sf.Type
	info := fieldInfo{name: sf.Name, kind: ft.Kind()}
	switch {
	case ft.Implements(fixedType):
		if !reflect.PointerTo(ft).Implements(unmarshalerType) {
			return info, fmt.Errorf("field %s: %s cannot be decoded: %w", sf.Name, ft, ErrUnsupported)
		}
		info.fixed = true
		info.size = reflect.Zero(ft).Interface().(Fixed).BinarySize()
	case common.IsFixedKind(ft.Kind()):
		info.size = common.FixedSize(ft.Kind())
	case ft.Kind() == reflect.Array && common.IsFixedKind(ft.Elem().Kind()):
		info.elem = ft.Elem().Kind()
		info.count = ft.Len()
		info.size = info.count * common.FixedSize(info.elem)
	default:
		return info, fmt.Errorf("field %s: %s: %w", sf.Name, ft, ErrUnsupported)
	}
	return info, nil
}

func structValue(val any) (reflect.Value, error) {
	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, ErrNotStruct
	}
	return v, nil
}

// Size returns the record width of val's struct type.
func (c *Codec) Size(val any) (int, error) {
	v, err := structValue(val)
	if err != nil {
		return 0, err
	}
	p, err := c.getPlan(v.Type())
	if err != nil {
		return 0, err
	}
	return p.size, nil
}

// Encode returns the record for val, a struct or pointer to struct.
func (c *Codec) Encode(val any) ([]byte, error) {
	return c.Append(nil, val)
}

// Append appends the record for val to dst. On error dst is returned with
// its original length.
func (c *Codec) Append(dst []byte, val any) ([]byte, error) {
	v, err := structValue(val)
	if err != nil {
		return dst, err
	}
	p, err := c.getPlan(v.Type())
	if err != nil {
		return dst, err
	}
	base := len(dst)
	if cap(dst)-len(dst) < p.size {
		grown := make([]byte, len(dst), len(dst)+p.size)
		copy(grown, dst)
		dst = grown
	}
	for _, field := range p.fields {
		fv := v.Field(field.idx)
		switch {
		case field.fixed:
			start := len(dst)
			dst, err = fv.Interface().(Fixed).AppendBinary(dst)
			if err != nil {
				return dst[:base], fmt.Errorf("field %s: %w", field.name, err)
			}
			if len(dst)-start != field.size {
				return dst[:base], fmt.Errorf("field %s: wrote %d bytes, want %d: %w",
					field.name, len(dst)-start, field.size, ErrUnsupported)
			}
		case field.kind == reflect.Array:
			for i := 0; i < field.count; i++ {
				dst = common.AppendFixed(dst, fv.Index(i), c.order)
			}
		default:
			dst = common.AppendFixed(dst, fv, c.order)
		}
	}
	return dst, nil
}

// Decode reads the record at the start of data into out, a pointer to
// struct. Bytes past the record are ignored. Bounded fields are validated by
// their UnmarshalBinary.
func (c *Codec) Decode(data []byte, out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPtr
	}
	dst := v.Elem()
	p, err := c.getPlan(dst.Type())
	if err != nil {
		return err
	}
	if len(data) < p.size {
		return fmt.Errorf("%d bytes, want %d: %w", len(data), p.size, ErrShortBuffer)
	}
	for _, field := range p.fields {
		fv := dst.Field(field.idx)
		b := data[field.offset : field.offset+field.size]
		switch {
		case field.fixed:
			if err := fv.Addr().Interface().(encoding.BinaryUnmarshaler).UnmarshalBinary(b); err != nil {
				return fmt.Errorf("field %s: %w", field.name, err)
			}
		case field.kind == reflect.Array:
			sz := common.FixedSize(field.elem)
			for i := 0; i < field.count; i++ {
				common.SetFixed(fv.Index(i), b[i*sz:(i+1)*sz], field.elem, c.order)
			}
		default:
			common.SetFixed(fv, b, field.kind, c.order)
		}
	}
	return nil
}

// DecodeAt decodes the i-th record of a buffer of back-to-back records.
func (c *Codec) DecodeAt(data []byte, i int, out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return ErrNotStructPtr
	}
	p, err := c.getPlan(v.Elem().Type())
	if err != nil {
		return err
	}
	if p.size == 0 || i < 0 || i >= len(data)/p.size {
		return fmt.Errorf("record %d: %w", i, ErrShortBuffer)
	}
	off := i * p.size
	return c.Decode(data[off:off+p.size], out)
}
