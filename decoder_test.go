package giflzw

import "testing"

func TestNewDecoderRejectsInvalidMinCodeWidth(t *testing.T) {
	for _, w := range []int{-1, 0, 1, 9, 20} {
		if _, err := NewDecoder(w); err != ErrInvalidMinCodeWidth {
			t.Errorf("NewDecoder(%d): got %v, want ErrInvalidMinCodeWidth", w, err)
		}
	}
}

// TestDecodeEmptyStream is scenario S1's inverse: the exact byte
// stream produced by encoding an empty run decodes back to no bytes.
func TestDecodeEmptyStream(t *testing.T) {
	got := decodeChunked(t, 2, []byte{0b00101100}, 0, 0)
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

// TestDecodeRejectsCodeTooFarAhead packs CLEAR, a singleton, then a
// code beyond next_code (only next_code itself, the KwKwK case, is
// ever legal to see before it has been installed).
func TestDecodeRejectsCodeTooFarAhead(t *testing.T) {
	const minWidth = 2
	dec, err := NewDecoder(minWidth)
	if err != nil {
		t.Fatal(err)
	}
	// width 3 throughout: CLEAR(4), singleton 0, then next_code+1 (7),
	// which is one past the only code legal to see unissued (next_code
	// itself, 6).
	clearCode := 1 << minWidth
	bogus := clearCode + 3
	var buf int
	var bits int
	push := func(code, width int) {
		buf |= code << bits
		bits += width
	}
	push(clearCode, 3)
	push(0, 3)
	push(bogus, 3)
	raw := []byte{byte(buf), byte(buf >> 8)}

	out := make([]byte, 16)
	_, _, status := dec.Step(raw, out)
	for status == StatusNoOutputAvail {
		_, _, status = dec.Step(nil, out)
	}
	if status != StatusInvalidData {
		t.Fatalf("got status %s, want InvalidData", status)
	}
}

// TestDecodeKwKwK is scenario S4 at the unit level: decoding the code
// that refers to itself (the string being installed this very step).
func TestDecodeKwKwK(t *testing.T) {
	data := []byte{1, 1, 1, 1, 1}
	encoded := encodeChunked(t, 2, HashProfileFast, data, 0, 0)
	got := decodeChunked(t, 2, encoded, 0, 0)
	if string(got) != string(data) {
		t.Fatalf("got %v, want %v", got, data)
	}
}

func TestDecoderStepAfterFinishIsIdempotent(t *testing.T) {
	encoded := encodeChunked(t, 8, HashProfileFast, []byte("abc"), 0, 0)
	dec, err := NewDecoder(8)
	if err != nil {
		t.Fatal(err)
	}
	out := make([]byte, 64)
	status := StatusNoOutputAvail
	pos := 0
	for status != StatusOk {
		n, _, st := dec.Step(encoded[pos:], out)
		pos += n
		status = st
	}
	n, produced, status := dec.Step([]byte{0xFF}, out)
	if n != 0 || produced != 0 || status != StatusOk {
		t.Fatalf("Step after finish: got (%d, %d, %s), want (0, 0, Ok)", n, produced, status)
	}
}
