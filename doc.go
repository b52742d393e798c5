// Package giflzw implements the incremental, suspendable LZW codec
// used by the GIF image format: variable-width codes that grow from
// minCodeWidth+1 up to 12 bits, an explicit CLEAR code that resets the
// dictionary, and an explicit END code that terminates the stream.
//
// # Why incremental
//
// Both Decoder and Encoder are driven entirely through Step, a single
// method that takes whatever input and output buffer space the caller
// currently has — including zero bytes of either — and makes forward
// progress until one side runs out. Step never blocks and never
// allocates; all suspended state lives on the instance, so the caller
// is free to feed bytes one at a time, a page at a time, or all at
// once, and the output is identical either way. This is the same
// contract an io.Reader/io.Writer pair gives you, without requiring
// either side to exist yet.
//
// # Basic usage
//
//	enc, err := giflzw.NewEncoder(8, giflzw.HashProfileFast)
//	if err != nil {
//		// minCodeWidth out of [2, 8]
//	}
//	var out []byte
//	buf := make([]byte, 4096)
//	pos := 0
//	for {
//		n, produced, status := enc.Step(pixels[pos:], buf, true)
//		pos += n
//		out = append(out, buf[:produced]...)
//		if status == giflzw.StatusOk {
//			break
//		}
//	}
//
// # What this package does not do
//
// It does not parse or write GIF files: no header, no logical screen
// descriptor, no color tables, no sub-block framing, no NeuQuant
// quantization. Those are peripheral concerns, layered on top of this
// codec by cmd/gifzw and its subblock helper — see that package for a
// minimal example of driving Step end to end.
package giflzw
