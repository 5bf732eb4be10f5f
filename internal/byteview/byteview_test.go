package byteview

import (
	"bytes"
	"testing"
	"unsafe"
)

func TestFromString(t *testing.T) {
	str := "my string"

	got := From(str)
	if unsafe.StringData(got.data) != unsafe.StringData(str) {
		t.Errorf("From(str) points to different memory")
	}
	if got.Len() != len(str) {
		t.Errorf("got.Len() = %v, want %v", got.Len(), len(str))
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = From(str)
		})
		if allocs > 0 {
			t.Errorf("From[string](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestFromBytes(t *testing.T) {
	b := []byte("my byte slice")

	got := From(b)
	if unsafe.StringData(got.data) != unsafe.SliceData(b) {
		t.Errorf("From(b) points to different memory")
	}
	if got.Len() != len(b) {
		t.Errorf("got.Len() = %v, want %v", got.Len(), len(b))
	}

	t.Run("allocs", func(t *testing.T) {
		allocs := testing.AllocsPerRun(10, func() {
			_ = From(b)
		})
		if allocs > 0 {
			t.Errorf("From[[]byte](...) allocated %v times, want 0", allocs)
		}
	})
}

func TestByteViewBytesRoundTrips(t *testing.T) {
	b := []byte("my byte slice")
	got := From(b).Bytes()
	if !bytes.Equal(got, b) {
		t.Errorf("From(b).Bytes() = %q, want %q", got, b)
	}
}

func TestByteViewBytesDoesNotCopy(t *testing.T) {
	b := []byte("my byte slice")
	got := From(b).Bytes()
	if unsafe.SliceData(got) != unsafe.SliceData(b) {
		t.Errorf("From(b).Bytes() points to different memory than b")
	}
}
