package giflzw

/*
encoder.go implements the GIF-variant LZW encoder as a resumable state
machine, incrementally porting original_source/src/glzwe.c (Raymond D.
Gardner, 2021). The reference's greedy matcher is the same algorithm
the teacher's LZWEncoder.compress implements for a whole in-memory
image (htab/codetab double hashing, masks, output-bit packing); here it
is re-expressed to suspend and resume at arbitrary buffer boundaries
instead of running start-to-finish over a fixed pixel array.
*/

// encPhase names the exact point Step will resume at.
type encPhase int

const (
	// encPhaseReset performs the CLEAR-and-rehash transition at the start
	// of the stream and queues the leading CLEAR code for packing. A
	// CLEAR caused by a full dictionary is handled by putTableFullClear
	// instead.
	encPhaseReset encPhase = iota

	// encPhaseReadFirst is TRY_IN1: waiting for the very first input
	// byte of the stream. After an internal CLEAR the overflowing byte
	// is already the head, so Step resumes at encPhaseReadNext.
	encPhaseReadFirst

	// encPhaseReadNext is TRY_IN2: waiting for the next main-loop input
	// byte to extend or break the current match.
	encPhaseReadNext

	// encPhasePack is the shared bit-packing routine (TRY_OUT1):
	// packs e.code (e.codeWidth bits) into the output, then dispatches
	// on putState to decide what happens next.
	encPhasePack

	// encPhaseFlush is TRY_OUT2: emitting the final partial byte of the
	// bit accumulator after END has been packed.
	encPhaseFlush

	encPhaseFinished
	encPhaseInternalError
)

// putState records what Step should do once the code currently being
// packed has been fully written out. Named after the reference's
// put_state values.
type putState int

const (
	putNone putState = iota
	putInitClear
	putHead
	putTableFullClear
	putLastHead
	putEnd
)

// Encoder is an incremental GIF LZW compressor. An Encoder is driven
// entirely through Step; it performs no I/O and allocates nothing once
// constructed.
type Encoder struct {
	minCodeWidth int
	clearCode    int
	endCode      int
	nextCode     int
	maxCode      int
	codeWidth    int

	phase    encPhase
	putState putState

	head, tail int
	probe      int
	code       int

	codeBitsLeft int
	codeBuffer   int
	bufBitsLeft  int

	dict *encoderDict
}

// NewEncoder allocates an Encoder for the given GIF LZW minimum code
// size (2..8) and hash-table tuning profile.
func NewEncoder(minCodeWidth int, profile HashProfile) (*Encoder, error) {
	if !validMinCodeWidth(minCodeWidth) {
		return nil, ErrInvalidMinCodeWidth
	}
	e := &Encoder{
		minCodeWidth: minCodeWidth,
		clearCode:    1 << minCodeWidth,
		dict:         newEncoderDict(profile),
	}
	e.endCode = e.clearCode + 1
	e.bufBitsLeft = 8
	e.reset()
	return e, nil
}

// reset performs the CLEAR transition: the hash table is wiped and the
// code-width counters return to their initial values. Unlike the
// decoder, the encoder's reset always also clears the dictionary — it
// is the only side that owns that memory.
func (e *Encoder) reset() {
	e.nextCode = e.endCode + 1
	e.maxCode = 2*e.clearCode - 1
	e.codeWidth = e.minCodeWidth + 1
	e.dict.clear()
}

// End releases the Encoder. Go's garbage collector owns the backing
// memory, so End frees nothing; it only marks the instance finished, so
// any later Step call returns StatusOk without making progress.
func (e *Encoder) End() {
	e.phase = encPhaseFinished
}

// beginPack queues code (codeWidth bits) for packing and arranges for
// next to run once every bit has been written out.
func (e *Encoder) beginPack(code int, next putState) {
	e.code = code
	e.putState = next
	e.codeBitsLeft = e.codeWidth
	e.phase = encPhasePack
}

// Step consumes raw bytes from in and writes bit-packed LZW codes to
// out, making as much progress as the two slices allow before
// returning. endOfData is the only signal that no more input will ever
// arrive; once Step has consumed all of in with endOfData set, it
// flushes the final code, END, and the residual bit buffer. See the
// Status documentation for how to interpret and resume from each
// non-Ok result.
func (e *Encoder) Step(in []byte, out []byte, endOfData bool) (inConsumed, outProduced int, status Status) {
	inPos, outPos := 0, 0

	for {
		switch e.phase {
		case encPhaseFinished:
			return inPos, outPos, StatusOk

		case encPhaseInternalError:
			return inPos, outPos, StatusInternalError

		case encPhaseReset:
			e.reset()
			e.beginPack(e.clearCode, putInitClear)

		case encPhaseReadFirst:
			if inPos >= len(in) {
				if !endOfData {
					return inPos, outPos, StatusNoInputAvail
				}
				e.beginPack(e.endCode, putEnd)
				continue
			}
			e.head = int(in[inPos])
			inPos++
			e.phase = encPhaseReadNext

		case encPhaseReadNext:
			if inPos >= len(in) {
				if !endOfData {
					return inPos, outPos, StatusNoInputAvail
				}
				e.beginPack(e.head, putLastHead)
				continue
			}
			e.tail = int(in[inPos])
			inPos++

			if code, ok, probe := e.dict.lookup(e.head, e.tail); ok {
				e.head = code
				e.probe = probe
				continue
			} else {
				e.probe = probe
			}
			e.beginPack(e.head, putHead)

		case encPhasePack:
			for e.codeBitsLeft > 0 {
				if e.bufBitsLeft == 0 {
					if outPos >= len(out) {
						return inPos, outPos, StatusNoOutputAvail
					}
					out[outPos] = byte(e.codeBuffer)
					outPos++
					e.codeBuffer = 0
					e.bufBitsLeft = 8
				}
				n := min(e.bufBitsLeft, e.codeBitsLeft)
				mask := 1<<n - 1
				e.codeBuffer |= (e.code & mask) << (8 - e.bufBitsLeft)
				e.code >>= n
				e.bufBitsLeft -= n
				e.codeBitsLeft -= n
			}

			switch e.putState {
			case putInitClear:
				e.phase = encPhaseReadFirst

			case putHead:
				if e.nextCode < codeLimit {
					e.dict.install(e.probe, e.nextCode, e.head, e.tail)
					if e.nextCode > e.maxCode {
						e.maxCode = e.maxCode*2 + 1
						if e.codeWidth < maxCodeWidth {
							e.codeWidth++
						}
					}
					e.nextCode++
					e.head = e.tail
					e.phase = encPhaseReadNext
				} else {
					e.beginPack(e.clearCode, putTableFullClear)
				}

			case putTableFullClear:
				e.reset()
				// The byte that overflowed the table becomes the new
				// pending head; the next iteration reads a fresh tail
				// rather than retrying the pair that triggered CLEAR
				// (see SPEC_FULL.md §D.3, matching glzwe.c exactly).
				e.head = e.tail
				e.phase = encPhaseReadNext

			case putLastHead:
				// The decoder installs one code behind the encoder, so by
				// the time it reads END it has widened whenever nextCode
				// passed maxCode; apply the same bump before packing END.
				if e.nextCode > e.maxCode && e.nextCode < codeLimit {
					e.maxCode = e.maxCode*2 + 1
					if e.codeWidth < maxCodeWidth {
						e.codeWidth++
					}
				}
				e.beginPack(e.endCode, putEnd)

			case putEnd:
				e.phase = encPhaseFlush

			default:
				e.phase = encPhaseInternalError
				return inPos, outPos, StatusInternalError
			}

		case encPhaseFlush:
			if e.bufBitsLeft < 8 {
				if outPos >= len(out) {
					return inPos, outPos, StatusNoOutputAvail
				}
				out[outPos] = byte(e.codeBuffer)
				outPos++
			}
			e.phase = encPhaseFinished
			return inPos, outPos, StatusOk

		default:
			return inPos, outPos, StatusInternalError
		}
	}
}
