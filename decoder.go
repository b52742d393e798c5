package giflzw

/*
decoder.go implements the GIF-variant LZW decoder as a resumable state
machine: an incremental port of original_source/src/glzwd.c (Raymond D.
Gardner, 2021), whose suspension points were originally labeled case
targets reached via goto inside nested loops. Here each suspension
point is a named phase and Step is a loop over an explicit phase field,
so resumption is a field read, not a stack to reconstruct.
*/

// decoderPhase names the exact point Step will resume at when it last
// returned a non-terminal status.
type decoderPhase int

const (
	// decPhaseGetCode begins assembling a fresh code: reset the
	// accumulator and fall into decPhaseAssemble. Doubles as both the
	// very first phase and the target of a CLEAR code, exactly as the
	// reference's LZW_INITIAL case / get_code label does double duty.
	decPhaseGetCode decoderPhase = iota

	// decPhaseAssemble is TRY_IN: mid-assembly of the current code,
	// waiting on input bytes.
	decPhaseAssemble

	// decPhaseDispatch acts on a fully-assembled code. It never
	// suspends itself; it only transitions to a phase that might.
	decPhaseDispatch

	// decPhaseEmitFirst is TRY_OUT1: waiting for output room to emit
	// the first byte of a new stream or of the code right after CLEAR.
	decPhaseEmitFirst

	// decPhaseEmitStack is TRY_OUT2: waiting for output room while
	// draining the unwind stack.
	decPhaseEmitStack

	decPhaseFinished
	decPhaseInvalid
	decPhaseInternalError
)

// control state, named as in the reference (ST_INITIAL / ST_NORMAL):
// whether the next data code is the first one seen since init or CLEAR.
type decoderControl int

const (
	ctrlInitial decoderControl = iota
	ctrlNormal
)

// Decoder is an incremental GIF LZW decompressor. A Decoder is driven
// entirely through Step; it performs no I/O and allocates nothing once
// constructed.
type Decoder struct {
	minCodeWidth int
	clearCode    int
	endCode      int
	nextCode     int
	maxCode      int
	codeWidth    int

	phase   decoderPhase
	control decoderControl

	// bit accumulator, shared by decPhaseAssemble across Step calls.
	bitBuf         uint32
	bitsInBuf      int
	code           int
	codeBitsNeeded int

	prevCode  int
	firstByte int
	inCode    int

	dict  decoderDict
	stack codeStack
}

// NewDecoder allocates and resets a Decoder for the given GIF LZW
// minimum code size (2..8).
func NewDecoder(minCodeWidth int) (*Decoder, error) {
	if !validMinCodeWidth(minCodeWidth) {
		return nil, ErrInvalidMinCodeWidth
	}
	d := &Decoder{
		minCodeWidth: minCodeWidth,
		clearCode:    1 << minCodeWidth,
	}
	d.endCode = d.clearCode + 1
	d.reset()
	return d, nil
}

// reset performs the CLEAR transition: counters and code width return
// to their initial values, but the bit accumulator is untouched (a
// CLEAR code is itself code-width bits of the *pre-reset* width, and
// bit-level framing continues uninterrupted across it).
func (d *Decoder) reset() {
	d.nextCode = d.endCode + 1
	d.maxCode = 2*d.clearCode - 1
	d.codeWidth = d.minCodeWidth + 1
	d.control = ctrlInitial
	d.stack.reset()
}

// End releases the Decoder. Go's garbage collector owns the backing
// memory, so End frees nothing; it only marks the instance finished, so
// any later Step call returns StatusOk without making progress.
func (d *Decoder) End() {
	d.phase = decPhaseFinished
}

// Step consumes bit-packed LZW codes from in and writes decompressed
// bytes to out, making as much progress as the two slices allow before
// returning. See the Status documentation for how to interpret and
// resume from each non-Ok result.
func (d *Decoder) Step(in, out []byte) (inConsumed, outProduced int, status Status) {
	inPos, outPos := 0, 0

	for {
		switch d.phase {
		case decPhaseFinished:
			return inPos, outPos, StatusOk

		case decPhaseInvalid:
			return inPos, outPos, StatusInvalidData

		case decPhaseInternalError:
			return inPos, outPos, StatusInternalError

		case decPhaseGetCode:
			d.code = 0
			d.codeBitsNeeded = d.codeWidth
			d.phase = decPhaseAssemble

		case decPhaseAssemble:
			for d.codeBitsNeeded > 0 {
				if d.bitsInBuf == 0 {
					if inPos >= len(in) {
						return inPos, outPos, StatusNoInputAvail
					}
					d.bitBuf = uint32(in[inPos])
					inPos++
					d.bitsInBuf = 8
				}
				n := min(d.bitsInBuf, d.codeBitsNeeded)
				mask := uint32(1)<<uint(n) - 1
				d.code |= int(d.bitBuf&mask) << (d.codeWidth - d.codeBitsNeeded)
				d.bitBuf >>= n
				d.bitsInBuf -= n
				d.codeBitsNeeded -= n
			}
			d.phase = decPhaseDispatch

		case decPhaseDispatch:
			switch {
			case d.code == d.endCode:
				d.phase = decPhaseFinished
				return inPos, outPos, StatusOk

			case d.code == d.clearCode:
				d.reset()
				d.phase = decPhaseGetCode

			case d.control == ctrlInitial:
				if d.code > d.endCode {
					d.phase = decPhaseInvalid
					return inPos, outPos, StatusInvalidData
				}
				d.firstByte = d.code
				d.prevCode = d.code
				d.phase = decPhaseEmitFirst

			default:
				d.inCode = d.code
				// KwKwK case: the code being defined this very step.
				if d.code >= d.nextCode {
					if d.code != d.nextCode {
						d.phase = decPhaseInvalid
						return inPos, outPos, StatusInvalidData
					}
					if !d.stack.push(byte(d.firstByte)) {
						d.phase = decPhaseInternalError
						return inPos, outPos, StatusInternalError
					}
					d.code = d.prevCode
				}
				for d.code >= d.clearCode {
					if !d.stack.push(d.dict.suffix[d.code]) {
						d.phase = decPhaseInternalError
						return inPos, outPos, StatusInternalError
					}
					d.code = int(d.dict.prefix[d.code])
				}
				d.firstByte = d.code
				if !d.stack.push(byte(d.code)) {
					d.phase = decPhaseInternalError
					return inPos, outPos, StatusInternalError
				}
				d.phase = decPhaseEmitStack
			}

		case decPhaseEmitFirst:
			if outPos >= len(out) {
				return inPos, outPos, StatusNoOutputAvail
			}
			out[outPos] = byte(d.firstByte)
			outPos++
			d.control = ctrlNormal
			d.phase = decPhaseGetCode

		case decPhaseEmitStack:
			for !d.stack.empty() {
				if outPos >= len(out) {
					return inPos, outPos, StatusNoOutputAvail
				}
				out[outPos] = d.stack.pop()
				outPos++
			}
			if d.nextCode < codeLimit {
				d.dict.install(d.nextCode, d.prevCode, d.firstByte)
				d.nextCode++
				if d.nextCode > d.maxCode && d.nextCode < codeLimit {
					d.maxCode = d.maxCode*2 + 1
					if d.codeWidth < maxCodeWidth {
						d.codeWidth++
					}
				}
			}
			d.prevCode = d.inCode
			d.phase = decPhaseGetCode

		default:
			return inPos, outPos, StatusInternalError
		}
	}
}
