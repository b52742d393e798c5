package giflzw

// decoderDict is the decoder's append-only code table. Entry c (for
// c in [clearCode+2, codeLimit)) expands to prefix[c] followed by the
// single byte suffix[c]; codes below clearCode are implicit singletons
// (the byte equal to the code itself) and are never stored here.
//
// This keeps prefix and suffix as separate arrays rather than the
// reference's single packed 20-bit word per entry (see SPEC_FULL.md
// §D.4) — the invariants are what matter, not the packing, and direct
// indexing is already O(1) either way.
type decoderDict struct {
	prefix [codeLimit]uint16
	suffix [codeLimit]byte
}

func (d *decoderDict) install(code, prefixCode, suffixByte int) {
	d.prefix[code] = uint16(prefixCode)
	d.suffix[code] = byte(suffixByte)
}

// codeStack is the LIFO unwind buffer used to reverse a code's string
// before emitting it. Its capacity matches the reference's
// STACK_SIZE==CODE_LIMIT: no code's expansion can exceed codeLimit
// bytes, since each installed code is strictly longer than its prefix.
type codeStack struct {
	bytes [codeLimit]byte
	top   int
}

func (s *codeStack) reset() {
	s.top = 0
}

// push reports whether the byte was stored; it only fails if the
// decoder's invariants have somehow been violated (an internal-error
// condition, never triggered by well-formed input).
func (s *codeStack) push(b byte) bool {
	if s.top >= len(s.bytes) {
		return false
	}
	s.bytes[s.top] = b
	s.top++
	return true
}

func (s *codeStack) pop() byte {
	s.top--
	return s.bytes[s.top]
}

func (s *codeStack) empty() bool {
	return s.top == 0
}
