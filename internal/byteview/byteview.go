// Package byteview lets the public API accept both string and []byte inputs for the sequences
// being aligned without forcing a copy in the string case.
package byteview

import "unsafe"

// ByteView is an immutable view over either a string or a []byte, stored without copying.
type ByteView struct {
	data string
}

// From wraps in as a ByteView. For a []byte input this borrows the underlying array rather than
// copying it; callers must not mutate in after passing it to From.
func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

// Len returns the view's length in bytes.
func (v ByteView) Len() int { return len(v.data) }

// Bytes returns the view's content as a []byte, still without copying. The search only ever
// reads from it.
func (v ByteView) Bytes() []byte {
	return unsafe.Slice(unsafe.StringData(v.data), len(v.data))
}
