// Package common encodes the primitive fields of a layout record. Booleans
// take one byte; integers and floats use their two's complement or IEEE 754
// bits in the record's byte order.
package common

import (
	"encoding/binary"
	"math"
	"reflect"
)

// FixedSize returns the encoded width of a primitive kind, or -1 for kinds
// without a fixed width. int, uint and uintptr are platform sized and so are
// not fixed.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return -1
	}
}

// IsFixedKind reports whether FixedSize(k) is defined.
func IsFixedKind(k reflect.Kind) bool { return FixedSize(k) > 0 }

// AppendFixed appends the encoding of v to dst. It panics if v is not of a
// fixed kind.
func AppendFixed(dst []byte, v reflect.Value, order binary.AppendByteOrder) []byte {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 1)
		}
		return append(dst, 0)
	case reflect.Int8:
		return append(dst, byte(v.Int()))
	case reflect.Uint8:
		return append(dst, byte(v.Uint()))
	case reflect.Int16:
		return order.AppendUint16(dst, uint16(v.Int()))
	case reflect.Uint16:
		return order.AppendUint16(dst, uint16(v.Uint()))
	case reflect.Int32:
		return order.AppendUint32(dst, uint32(v.Int()))
	case reflect.Uint32:
		return order.AppendUint32(dst, uint32(v.Uint()))
	case reflect.Int64:
		return order.AppendUint64(dst, uint64(v.Int()))
	case reflect.Uint64:
		return order.AppendUint64(dst, v.Uint())
	case reflect.Float32:
		return order.AppendUint32(dst, math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		return order.AppendUint64(dst, math.Float64bits(v.Float()))
	default:
		panic("not fixed")
	}
}

// SetFixed decodes the k-kinded value at the start of b into dst. b must hold
// at least FixedSize(k) bytes.
func SetFixed(dst reflect.Value, b []byte, k reflect.Kind, order binary.ByteOrder) {
	switch k {
	case reflect.Bool:
		dst.SetBool(b[0] != 0)
	case reflect.Int8:
		dst.SetInt(int64(int8(b[0])))
	case reflect.Uint8:
		dst.SetUint(uint64(b[0]))
	case reflect.Int16:
		dst.SetInt(int64(int16(order.Uint16(b))))
	case reflect.Uint16:
		dst.SetUint(uint64(order.Uint16(b)))
	case reflect.Int32:
		dst.SetInt(int64(int32(order.Uint32(b))))
	case reflect.Uint32:
		dst.SetUint(uint64(order.Uint32(b)))
	case reflect.Int64:
		dst.SetInt(int64(order.Uint64(b)))
	case reflect.Uint64:
		dst.SetUint(order.Uint64(b))
	case reflect.Float32:
		dst.SetFloat(float64(math.Float32frombits(order.Uint32(b))))
	case reflect.Float64:
		dst.SetFloat(math.Float64frombits(order.Uint64(b)))
	}
}
