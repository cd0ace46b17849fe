// Package complexity totals the "complexity" of a list of door codes typed
// through a chain of robot-operated keypads.
//
// A code is typed on the numeric keypad by a robot whose arm starts on A.
// That robot is driven from a directional keypad, which may itself be driven
// by another robot, and so on: depth counts the directional keypads standing
// between the human and the numeric keypad's robot.
//
// For every code:
//
//  1. Walk its keys on the numeric keypad starting from A.
//  2. For each transition take its PathSet and price every candidate with
//     cost.Memoizer at the requested depth; keep the minimum.
//  3. Sum the minima into the code's press count.
//  4. Multiply by the code's numeric value.
//
// The result is the sum over all codes. Both PathSet caches and the cost
// cache belong to the Aggregator and are shared by every code it prices,
// which is what makes depth 25 cheap.
//
// Options:
//
//   - WithLayouts(numeric, directional): price codes on custom keypads.
//   - WithWorkers(n):                    price up to n codes concurrently.
//   - WithLogger(l):                     debug/info records via log/slog.
//
// Errors:
//
//   - ErrOptionViolation     for invalid options.
//   - cost.ErrNegativeDepth  for depth < 0.
//   - cost.ErrOverflow       when a press count, product or sum leaves int64.
//   - keypad.ErrInvariant family for codes or transitions the layouts cannot serve.
package complexity
