package wireenc

import (
	"bytes"
	"testing"
)

func TestWriteU32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    uint32
		want []byte
	}{
		{name: "zero", v: 0, want: []byte{0, 0, 0, 0}},
		{name: "eleven", v: 11, want: []byte{0, 0, 0, 11}},
		{name: "max", v: 0xFFFFFFFF, want: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := make([]byte, 4)
			New(buf).WriteU32(tt.v)
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("WriteU32(%d) = %v, want %v", tt.v, buf, tt.want)
			}
		})
	}
}

func TestWriteBytes(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 5)
	enc := New(buf)
	enc.WriteBytes([]byte("ab"))
	enc.WriteBytes([]byte("cde"))
	if got, want := string(buf), "abcde"; got != want {
		t.Errorf("buf = %q, want %q", got, want)
	}
	if enc.Len() != 5 {
		t.Errorf("Len() = %d, want 5", enc.Len())
	}
}

func TestWriteSSHString(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 4+11)
	New(buf).WriteSSHString([]byte("ssh-ed25519"))

	want := []byte{0, 0, 0, 11}
	want = append(want, []byte("ssh-ed25519")...)
	if !bytes.Equal(buf, want) {
		t.Errorf("buf = %v, want %v", buf, want)
	}
}

func TestOverflowPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on overflow, got none")
		}
		if _, ok := r.(*ErrOverflow); !ok {
			t.Errorf("panic value = %#v (%T), want *ErrOverflow", r, r)
		}
	}()

	buf := make([]byte, 3)
	New(buf).WriteU32(1)
}

func TestOverflowErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ErrOverflow{Cursor: 2, Need: 4, Cap: 3}
	got := err.Error()
	if got == "" {
		t.Fatal("Error() returned empty string")
	}
}

func TestSequentialWritesAdvanceCursor(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 4+4+2)
	enc := New(buf)
	enc.WriteU32(1)
	enc.WriteU32(2)
	enc.WriteBytes([]byte("xy"))

	if enc.Len() != len(buf) {
		t.Errorf("Len() = %d, want %d", enc.Len(), len(buf))
	}
}
