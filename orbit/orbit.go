// Package orbit enumerates every fundamental domain of a finite reflection
// group by repeatedly reflecting a starting flag across the generating
// mirrors.
//
// Key features:
//   - Generate(start, mirrors, opts...): depth-first traversal over an
//     explicit stack of {flag, next-mirror} frames; no recursion.
//   - Membership is delegated to an Index: LinearIndex (reference scan) or
//     BucketIndex (centroid hash, default). Both accept the same flags.
//   - Hooks: OnDiscover with error abort; budget: WithMaxFlags.
//   - Cancellation via context.Context.
//
// Complexity:
//
//   - Time:   O(N·D) reflections for N flags, plus N·D index lookups:
//     O(N²·D²) with LinearIndex, close to O(N·D²) with BucketIndex.
//   - Memory: O(N·D²) for the flags, O(N) for the stack in the worst case.
//
// Termination: every step either advances the top frame's mirror index or
// pops it, and frames are pushed only for new flags, so a finite group
// finishes after exactly N·D reflections.
package orbit

import (
	"fmt"

	"github.com/katalvlaran/wythoff/flag"
)

// frame is one level of the traversal: a flag and the next mirror to try.
type frame struct {
	flag flag.Flag
	next int
}

// walker encapsulates mutable generation state.
type walker struct {
	mirrors []flag.Vector
	opts    Options
	index   Index
	stack   []frame
	res     *Result
}

// Generate returns every distinct flag reachable from start by reflections
// across mirrors. start is Flags[0] of the result.
//
// Errors:
//   - ErrNoMirrors if mirrors is empty.
//   - flag.ErrDimensionMismatch if a mirror's length differs from start.Dim().
//   - ErrFlagLimit if WithMaxFlags is exceeded.
//   - context errors, OnDiscover errors (wrapped).
//
// On error the partial result (flags found so far) is returned with it.
func Generate(start flag.Flag, mirrors []flag.Vector, opts ...Option) (*Result, error) {
	// 1. Validate input
	if len(mirrors) == 0 {
		return nil, ErrNoMirrors
	}
	d := start.Dim()
	if d == 0 {
		return nil, flag.ErrEmpty
	}
	if len(mirrors) != d {
		return nil, fmt.Errorf("orbit: %d mirrors for dimension %d: %w", len(mirrors), d, flag.ErrDimensionMismatch)
	}
	for i, m := range mirrors {
		if len(m) != d {
			return nil, fmt.Errorf("orbit: mirror %d has %d coordinates: %w", i, len(m), flag.ErrDimensionMismatch)
		}
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	idx := o.Index
	if idx == nil {
		idx = NewBucketIndex(o.Epsilon2)
	}

	w := &walker{mirrors: mirrors, opts: o, index: idx, res: &Result{}}

	// 3. Seed with the start flag
	if err := w.discover(start); err != nil {
		w.res.Flags = idx.Flags()
		return w.res, err
	}
	w.push(start)

	// 4. Traverse
	err := w.run()
	w.res.Flags = idx.Flags()

	return w.res, err
}

// run drives the state machine until the stack empties.
func (w *walker) run() error {
	var (
		top       *frame
		candidate flag.Flag
		err       error
	)
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Reflect the top flag across its next mirror
		top = &w.stack[len(w.stack)-1]
		if candidate, err = top.flag.Reflect(w.mirrors[top.next]); err != nil {
			return fmt.Errorf("orbit: reflect across mirror %d: %w", top.next, err)
		}
		w.res.Reflections++

		// 3. Advance the frame, popping it once every mirror was tried.
		// top is not used past this point: push may reallocate the stack.
		w.advance()

		// 4. Known domain: nothing to explore
		if _, found := w.index.Find(candidate); found {
			continue
		}

		// 5. New domain: record it and descend
		if err = w.discover(candidate); err != nil {
			return err
		}
		w.push(candidate)
	}

	return nil
}

// discover adds f to the index, enforces the budget and runs the hook.
func (w *walker) discover(f flag.Flag) error {
	i := w.index.Add(f)
	if w.opts.MaxFlags > 0 && w.index.Len() > w.opts.MaxFlags {
		return fmt.Errorf("%w: more than %d flags", ErrFlagLimit, w.opts.MaxFlags)
	}
	if w.opts.OnDiscover != nil {
		if err := w.opts.OnDiscover(i, f); err != nil {
			return fmt.Errorf("orbit: OnDiscover hook for flag %d: %w", i, err)
		}
	}

	return nil
}

// advance moves the top frame to its next mirror, popping it when exhausted.
func (w *walker) advance() {
	top := &w.stack[len(w.stack)-1]
	top.next++
	if top.next == len(w.mirrors) {
		w.stack = w.stack[:len(w.stack)-1]
	}
}

func (w *walker) push(f flag.Flag) {
	w.stack = append(w.stack, frame{flag: f, next: 0})
	if len(w.stack) > w.res.MaxStackDepth {
		w.res.MaxStackDepth = len(w.stack)
	}
}
