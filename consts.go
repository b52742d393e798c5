package giflzw

import "errors"

const (
	// maxCodeWidth is the widest a GIF LZW code is ever packed to.
	maxCodeWidth = 12

	// codeLimit is the first code value that can never be assigned;
	// codes 0..codeLimit-1 are the whole of the 12-bit code space.
	codeLimit = 1 << maxCodeWidth

	minAllowedCodeWidth = 2
	maxAllowedCodeWidth = 8
)

// ErrInvalidMinCodeWidth is returned by NewDecoder and NewEncoder when
// minCodeWidth falls outside [2, 8]. GIF permits 2..8; 1 is rejected
// because clearCode=2, endCode=3, and the initial next_code=4 would
// already overflow the initial 2-bit code width (see original_source
// glzwd.c/glzwe.c, which accept it but immediately emit an undecodable
// stream).
var ErrInvalidMinCodeWidth = errors.New("giflzw: min_code_width must be in [2, 8]")

func validMinCodeWidth(w int) bool {
	return w >= minAllowedCodeWidth && w <= maxAllowedCodeWidth
}
