// Command gifzw is a small demonstration harness for the giflzw
// codec. It reads raw bytes (already-indexed pixel values, not a GIF
// file) and either compresses them to a GIF-style sub-block-framed LZW
// stream, or reverses that process. It does not read or write GIF
// files — see the teacher's own example/main.go for that — it exists
// only to drive Encoder.Step/Decoder.Step end to end the way an
// operator would, in the spirit of that same example program.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/rgardner/giflzw"
	"github.com/rgardner/giflzw/subblock"
)

const stepBufSize = 4096

type runStats struct {
	bytesIn, bytesOut int
	stepCalls         int
	elapsed           time.Duration
}

func (s runStats) print() {
	tbl := table.New("Metric", "Value")
	tbl.AddRow("bytes in", s.bytesIn)
	tbl.AddRow("bytes out", s.bytesOut)
	tbl.AddRow("Step calls", s.stepCalls)
	tbl.AddRow("elapsed", s.elapsed)
	tbl.Print()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gifzw:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var minCodeWidth int
	var compact bool
	var showStats bool

	root := &cobra.Command{
		Use:   "gifzw",
		Short: "Drive the giflzw incremental codec over raw byte streams",
	}
	root.PersistentFlags().IntVar(&minCodeWidth, "min-code-width", 8, "LZW minimum code size (2-8)")
	root.PersistentFlags().BoolVar(&compact, "compact-hash", false, "use the encoder's compact (prime-sized) hash profile")
	root.PersistentFlags().BoolVar(&showStats, "stats", false, "print a summary table after the run")

	encodeCmd := &cobra.Command{
		Use:   "encode [input] [output]",
		Short: "Compress raw bytes into a sub-block-framed LZW stream",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := giflzw.HashProfileFast
			if compact {
				profile = giflzw.HashProfileCompact
			}
			enc, err := giflzw.NewEncoder(minCodeWidth, profile)
			if err != nil {
				return err
			}
			in, out, err := openPair(args[0], args[1])
			if err != nil {
				return err
			}
			defer in.Close()
			defer out.Close()

			bw := bufio.NewWriter(out)
			fw := subblock.NewWriter(bw)
			stats, err := runEncode(enc, bufio.NewReader(in), fw)
			if err != nil {
				return err
			}
			if err := fw.Close(); err != nil {
				return err
			}
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			fmt.Println("encoded", args[0], "->", args[1])
			if showStats {
				stats.print()
			}
			return nil
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [input] [output]",
		Short: "Decompress a sub-block-framed LZW stream back to raw bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := giflzw.NewDecoder(minCodeWidth)
			if err != nil {
				return err
			}
			in, out, err := openPair(args[0], args[1])
			if err != nil {
				return err
			}
			defer in.Close()
			defer out.Close()

			fr := subblock.NewReader(bufio.NewReader(in))
			bw := bufio.NewWriter(out)
			stats, err := runDecode(dec, fr, bw)
			if err != nil {
				return err
			}
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
			fmt.Println("decoded", args[0], "->", args[1])
			if showStats {
				stats.print()
			}
			return nil
		},
	}

	root.AddCommand(encodeCmd, decodeCmd)
	return root
}

func openPair(inPath, outPath string) (in, out *os.File, err error) {
	in, err = os.Open(inPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	out, err = os.Create(outPath)
	if err != nil {
		in.Close()
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return in, out, nil
}

// runEncode drives enc to completion, reading from src and writing
// through dst. It does not close dst; the caller closes the sub-block
// writer afterward to finalize the framing.
func runEncode(enc *giflzw.Encoder, src io.Reader, dst io.Writer) (runStats, error) {
	start := time.Now()
	var stats runStats

	inBuf := make([]byte, stepBufSize)
	outBuf := make([]byte, stepBufSize)

	pending := inBuf[:0]
	eof := false

	for {
		if len(pending) == 0 && !eof {
			n, err := src.Read(inBuf)
			pending = inBuf[:n]
			if err != nil {
				if err != io.EOF {
					return stats, fmt.Errorf("read input: %w", err)
				}
				eof = true
			}
			stats.bytesIn += n
		}

		consumed, produced, status := enc.Step(pending, outBuf, eof)
		stats.stepCalls++
		pending = pending[consumed:]

		if produced > 0 {
			if _, err := dst.Write(outBuf[:produced]); err != nil {
				return stats, fmt.Errorf("write output: %w", err)
			}
			stats.bytesOut += produced
		}

		switch status {
		case giflzw.StatusOk:
			stats.elapsed = time.Since(start)
			return stats, nil
		case giflzw.StatusNoInputAvail, giflzw.StatusNoOutputAvail:
			continue
		default:
			return stats, fmt.Errorf("encode: %s", status)
		}
	}
}

func runDecode(dec *giflzw.Decoder, src io.Reader, dst io.Writer) (runStats, error) {
	start := time.Now()
	var stats runStats

	inBuf := make([]byte, stepBufSize)
	outBuf := make([]byte, stepBufSize)

	pending := inBuf[:0]
	eof := false

	for {
		if len(pending) == 0 && !eof {
			n, err := src.Read(inBuf)
			pending = inBuf[:n]
			if err != nil {
				if err != io.EOF {
					return stats, fmt.Errorf("read input: %w", err)
				}
				eof = true
			}
			stats.bytesIn += n
		}

		consumed, produced, status := dec.Step(pending, outBuf)
		stats.stepCalls++
		pending = pending[consumed:]

		if produced > 0 {
			if _, err := dst.Write(outBuf[:produced]); err != nil {
				return stats, fmt.Errorf("write output: %w", err)
			}
			stats.bytesOut += produced
		}

		switch status {
		case giflzw.StatusOk:
			stats.elapsed = time.Since(start)
			return stats, nil
		case giflzw.StatusNoOutputAvail:
			continue
		case giflzw.StatusNoInputAvail:
			if eof {
				return stats, fmt.Errorf("decode: %w", io.ErrUnexpectedEOF)
			}
			continue
		default:
			return stats, fmt.Errorf("decode: %s", status)
		}
	}
}
