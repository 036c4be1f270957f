package valuebridge

import (
	"bytes"
	"testing"
)

func TestNewOwnedBinary_TakesOwnership(t *testing.T) {
	data := []byte{1, 2, 3}
	b := NewOwnedBinary(data)

	if b.Len() != 3 {
		t.Fatalf("Len = %d, want 3", b.Len())
	}
	if &b.Bytes()[0] != &data[0] {
		t.Error("NewOwnedBinary should wrap, not copy")
	}
}

func TestCopyBinary_Copies(t *testing.T) {
	src := []byte{1, 2, 3}
	b := CopyBinary(src)
	src[0] = 9

	if !bytes.Equal(b.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("Bytes = %v, source mutation leaked", b.Bytes())
	}
}

func TestOwnedBinary_Empty(t *testing.T) {
	tests := []struct {
		name string
		b    OwnedBinary
	}{
		{"NewOwnedBinary(nil)", NewOwnedBinary(nil)},
		{"NewOwnedBinary(empty)", NewOwnedBinary([]byte{})},
		{"CopyBinary(nil)", CopyBinary(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.b.Len() != 0 {
				t.Errorf("Len = %d", tt.b.Len())
			}
			if tt.b.Bytes() == nil || tt.b.IsNull() {
				t.Error("zero-length buffer must have non-nil storage")
			}
			data, err := tt.b.Read()
			if err != nil || data == nil {
				t.Errorf("Read = %v, %v", data, err)
			}
		})
	}
}

func TestOwnedBinary_ZeroValue(t *testing.T) {
	var b OwnedBinary
	if !b.IsNull() {
		t.Error("zero value should report IsNull")
	}
}

func TestOwnedBinary_IsBinaryData(t *testing.T) {
	var data BinaryData = CopyBinary([]byte("abc"))
	got, err := data.Read()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc" || data.Len() != 3 {
		t.Errorf("Read = %q, Len = %d", got, data.Len())
	}
}
