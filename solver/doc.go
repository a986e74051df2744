// Package solver implements exhaustive depth-first backtracking search
// over board.Board values, with cancellation and per-assignment hooks.
//
// What:
//
//   - Solve(b, opts...): returns the first complete, rule-consistent
//     completion of b, or ErrUnsolvable when no assignment satisfies it.
//   - Deterministic: the search advances the decision cursor in row-major
//     order and tries digits in ascending order, so the result is always
//     the lexicographically-first solution under that ordering.
//   - Every branch recurses on an independent copy of the Board (value
//     semantics), so no two call frames share cell storage and a failed
//     branch is discarded, never rolled back.
//   - Diagnostics: Result reports candidate assignments tried (Nodes)
//     and the deepest cursor position reached (MaxLevel).
//
// Why:
//
//   - Correctness over cleverness: plain exhaustive enumeration guided by
//     board.Validate needs no propagation logic to be provably complete.
//   - Value-copy recursion makes the search trivially safe to reason
//     about — and safe to parallelize externally, should a caller want to.
//
// Complexity:
//
//   - Depth is bounded by 81 (one assignment per level); each level tries
//     at most 9 digits. Worst-case time is exponential — the accepted
//     cost of brute force — but realistic puzzles finish quickly.
//   - Memory: O(depth) boards on the call stack, ~162 bytes each.
//
// Options:
//
//   - WithContext(ctx)  — cooperative cancellation between steps.
//   - WithOnAssign(fn)  — hook on each candidate placement; an error
//     aborts the whole search.
//
// Errors:
//
//   - ErrUnsolvable     — no assignment satisfies the grid.
//   - context.Canceled / context.DeadlineExceeded — ctx expired.
//   - any error returned by the OnAssign hook.
package solver
