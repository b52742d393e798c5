package giflzw

// Status is the stable result code returned by every Decoder.Step and
// Encoder.Step call. The numeric values are part of the public contract
// and must not be renumbered.
type Status int

const (
	// StatusOk means the operation completed. For a decoder this means
	// the END code has been consumed; for an encoder it means the
	// residual bit buffer has been flushed after the END code. The
	// instance is terminal: further Step calls return StatusOk again
	// without making progress.
	StatusOk Status = iota

	// StatusNoInputAvail means the codec needs more input bytes. Resume
	// by calling Step again with a non-empty input slice (or, for the
	// encoder, with endOfData set once no more input will ever arrive).
	StatusNoInputAvail

	// StatusNoOutputAvail means the output slice is full. Resume by
	// calling Step again with more output room.
	StatusNoOutputAvail

	// StatusOutOfMemory is reserved for allocation failure. Go's
	// fixed-size instances never fail to allocate after construction,
	// so Step never returns this; it exists to keep the status enum's
	// numbering identical to the reference C interface.
	StatusOutOfMemory

	// StatusInternalError marks an unreachable state in the step
	// dispatch. Seeing it indicates a bug in this package, not in the
	// caller or the input stream.
	StatusInternalError

	// StatusInvalidData is returned by the decoder only, when a code
	// violates the GIF LZW invariants (see Decoder.Step). It is
	// terminal: the instance must be discarded.
	StatusInvalidData
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "Ok"
	case StatusNoInputAvail:
		return "NoInputAvail"
	case StatusNoOutputAvail:
		return "NoOutputAvail"
	case StatusOutOfMemory:
		return "OutOfMemory"
	case StatusInternalError:
		return "InternalError"
	case StatusInvalidData:
		return "InvalidData"
	default:
		return "Status(unknown)"
	}
}
