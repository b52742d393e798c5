package giflzw

import (
	"fmt"
	"testing"
)

// encodeChunked drives an Encoder to completion against a single in-memory
// buffer, feeding input and collecting output in chunks of the given
// sizes (0 means "use the whole remaining slice in one go").
func encodeChunked(t *testing.T, minWidth int, profile HashProfile, data []byte, inChunk, outChunk int) []byte {
	t.Helper()
	enc, err := NewEncoder(minWidth, profile)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	var out []byte
	outBuf := make([]byte, chunkOrAll(outChunk, 1<<20))
	pos := 0
	for {
		end := len(data)
		if inChunk > 0 && pos+inChunk < end {
			end = pos + inChunk
		}
		in := data[pos:end]

		n, produced, status := enc.Step(in, outBuf, pos+len(in) >= len(data))
		pos += n
		out = append(out, outBuf[:produced]...)

		switch status {
		case StatusOk:
			return out
		case StatusNoInputAvail, StatusNoOutputAvail:
			continue
		default:
			t.Fatalf("encode: unexpected status %s", status)
		}
	}
}

func decodeChunked(t *testing.T, minWidth int, data []byte, inChunk, outChunk int) []byte {
	t.Helper()
	dec, err := NewDecoder(minWidth)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	var out []byte
	outBuf := make([]byte, chunkOrAll(outChunk, 1<<20))
	pos := 0
	for {
		end := len(data)
		if inChunk > 0 && pos+inChunk < end {
			end = pos + inChunk
		}
		in := data[pos:end]

		n, produced, status := dec.Step(in, outBuf)
		pos += n
		out = append(out, outBuf[:produced]...)

		switch status {
		case StatusOk:
			return out
		case StatusNoInputAvail:
			if len(in) == 0 && n == 0 && pos >= len(data) {
				t.Fatalf("decode: exhausted input without reaching END code")
			}
			continue
		case StatusNoOutputAvail:
			continue
		default:
			t.Fatalf("decode: unexpected status %s", status)
		}
	}
}

func chunkOrAll(chunk, all int) int {
	if chunk > 0 {
		return chunk
	}
	return all
}

// encodeOrErr and decodeOrErr mirror encodeChunked/decodeChunked but
// report failures through a returned error instead of *testing.T, so
// they are safe to call from a goroutine other than the one running
// the test (t.Fatalf is not).
func encodeOrErr(minWidth int, profile HashProfile, data []byte, inChunk, outChunk int) ([]byte, error) {
	enc, err := NewEncoder(minWidth, profile)
	if err != nil {
		return nil, fmt.Errorf("NewEncoder: %w", err)
	}

	var out []byte
	outBuf := make([]byte, chunkOrAll(outChunk, 1<<20))
	pos := 0
	for {
		end := len(data)
		if inChunk > 0 && pos+inChunk < end {
			end = pos + inChunk
		}
		in := data[pos:end]

		n, produced, status := enc.Step(in, outBuf, pos+len(in) >= len(data))
		pos += n
		out = append(out, outBuf[:produced]...)

		switch status {
		case StatusOk:
			return out, nil
		case StatusNoInputAvail, StatusNoOutputAvail:
			continue
		default:
			return nil, fmt.Errorf("encode: unexpected status %s", status)
		}
	}
}

func decodeOrErr(minWidth int, data []byte, inChunk, outChunk int) ([]byte, error) {
	dec, err := NewDecoder(minWidth)
	if err != nil {
		return nil, fmt.Errorf("NewDecoder: %w", err)
	}

	var out []byte
	outBuf := make([]byte, chunkOrAll(outChunk, 1<<20))
	pos := 0
	for {
		end := len(data)
		if inChunk > 0 && pos+inChunk < end {
			end = pos + inChunk
		}
		in := data[pos:end]

		n, produced, status := dec.Step(in, outBuf)
		pos += n
		out = append(out, outBuf[:produced]...)

		switch status {
		case StatusOk:
			return out, nil
		case StatusNoInputAvail:
			if len(in) == 0 && n == 0 && pos >= len(data) {
				return nil, fmt.Errorf("decode: exhausted input without reaching END code")
			}
			continue
		case StatusNoOutputAvail:
			continue
		default:
			return nil, fmt.Errorf("decode: unexpected status %s", status)
		}
	}
}
