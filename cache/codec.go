// Package cache persists enumerated flags so that a diagram's flag graph is
// generated once and reloaded afterwards.
//
// The encoding is plain text: one line per flag, the coordinates of vertex 0
// followed by those of vertex 1 and so on, each value followed by a single
// space. Readers split on any whitespace and group D·D consecutive values
// into one flag, so line structure is not significant.
//
//	0.5 0.5 0 -0.25 0.75 0 0 0 1 \n
//
// Entries are named by coxeter.Matrix.CacheName and live either in a
// directory (FileStore) or in an embedded badger database (BadgerStore).
package cache

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/wythoff/flag"
)

// Store loads and saves flag sets by name.
type Store interface {
	// Load returns the flags stored under name, decoded with dimension dim.
	Load(name string, dim int) ([]flag.Flag, error)
	// Save stores flags under name. It fails with ErrExists if name is taken.
	Save(name string, flags []flag.Flag) error
	// Close releases the store's resources.
	Close() error
}

// Encode writes flags to w in the text format.
func Encode(w io.Writer, flags []flag.Flag) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, f := range flags {
		for _, v := range f.Vertices {
			for _, x := range v {
				buf = strconv.AppendFloat(buf[:0], x, 'g', -1, 64)
				buf = append(buf, ' ')
				if _, err := bw.Write(buf); err != nil {
					return fmt.Errorf("cache: encode: %w", err)
				}
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("cache: encode: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}

	return nil
}

// DecodeStats reports what a lenient Decode discarded.
type DecodeStats struct {
	Flags          int // flags decoded
	SkippedTokens  int // tokens that were not finite numbers
	DroppedPartial int // values of an incomplete trailing flag
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	lenient bool
	stats   *DecodeStats
}

// WithLenient makes Decode skip malformed tokens and drop an incomplete
// trailing flag instead of failing.
func WithLenient() DecodeOption {
	return func(o *decodeOptions) { o.lenient = true }
}

// WithStats makes Decode fill s. s is written even when Decode fails.
func WithStats(s *DecodeStats) DecodeOption {
	return func(o *decodeOptions) { o.stats = s }
}

// Decode reads flags of dimension dim from r.
//
// Errors (strict mode):
//   - ErrInvalidDim when dim < 1.
//   - ErrMalformedToken for a token that does not parse as a finite float64.
//   - ErrTruncatedRecord when the value count is not a multiple of dim·dim.
//   - read errors from r.
func Decode(r io.Reader, dim int, opts ...DecodeOption) ([]flag.Flag, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDim, dim)
	}
	var o decodeOptions
	for _, fn := range opts {
		fn(&o)
	}
	var stats DecodeStats
	if o.stats != nil {
		defer func() { *o.stats = stats }()
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		out     []flag.Flag
		pending = make([]float64, 0, dim*dim)
		token   int
	)
	for sc.Scan() {
		token++
		x, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			if o.lenient {
				stats.SkippedTokens++
				continue
			}
			return nil, fmt.Errorf("%w: token %d %q", ErrMalformedToken, token, sc.Text())
		}
		pending = append(pending, x)
		if len(pending) < dim*dim {
			continue
		}
		out = append(out, unpack(pending, dim))
		pending = pending[:0]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cache: decode: %w", err)
	}
	if len(pending) > 0 {
		if !o.lenient {
			return nil, fmt.Errorf("%w: %d of %d values after flag %d", ErrTruncatedRecord, len(pending), dim*dim, len(out))
		}
		stats.DroppedPartial = len(pending)
	}
	stats.Flags = len(out)

	return out, nil
}

// unpack splits dim·dim values into dim vertices.
func unpack(values []float64, dim int) flag.Flag {
	vertices := make([]flag.Vector, dim)
	for c := range vertices {
		vertices[c] = append(flag.Vector(nil), values[c*dim:(c+1)*dim]...)
	}

	return flag.Flag{Vertices: vertices}
}
