// Package astar finds a shortest path between two vertices of a
// graph.WeightedGraph with the A* algorithm.
//
// Overview:
//
//   - The frontier is a minpq.IndexedMinPQ keyed by vertex. A vertex's
//     priority is distTo[v] + EstimatedDistanceToGoal(v, goal); an improved
//     distance lowers the priority in place (decrease-key) instead of pushing
//     a duplicate entry.
//   - A run ends in exactly one of three outcomes: Solved, Unsolvable or
//     Timeout. None of them is an error; callers branch on Result.Outcome.
//
// Algorithm:
//
//  1. Seed the frontier with start at priority h(start, goal); distTo[start] = 0.
//  2. While the frontier is non-empty:
//     a. Pop the minimum vertex p and count it as explored.
//     b. p == goal: Solved. The path is rebuilt through edgeTo.
//     c. Elapsed time ≥ timeout: Timeout. No partial path is kept.
//     d. Relax every edge p→q: if q has no distance yet or distTo[p]+w is
//     strictly smaller, record it and add q or lower its priority.
//  3. Frontier exhausted: Unsolvable.
//
// Timeout:
//
//   - The clock is sampled once per pop, after the goal check. A zero (or
//     negative) timeout therefore yields Timeout after exactly one pop unless
//     start == goal. The worst-case overrun is one relax step.
//   - There is no other cancellation; a run cannot be stopped from outside.
//
// Numeric policy:
//
//   - Weights and estimates must be non-negative. Negative weights are out of
//     contract: the search still terminates on finite graphs but the result is
//     not guaranteed to be shortest. Nothing checks for them.
//   - NaN weights or estimates are rejected by the frontier queue and make
//     the run panic.
//   - An inadmissible estimate (larger than the true remaining distance)
//     silently yields a suboptimal path. WithAdmissibilityCheck counts such
//     vertices when a reference distance is known.
//
// Ties:
//
//   - Equal priorities are resolved by minpq's sift rule (left child first);
//     equal candidate distances keep the predecessor recorded first.
//
// Options:
//
//   - WithLogger(l):             debug record per run, warn per heuristic violation.
//   - WithClock(now):            time source, for deterministic tests.
//   - WithFrontierCapacity(n):   initial frontier capacity (n ≥ 1).
//   - WithAdmissibilityCheck(r): r(v) returns the true remaining distance from v.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a consistent heuristic.
//   - Space: O(V) for distTo, edgeTo and the frontier.
//
// Thread safety:
//
//   - Every Solve call owns its frontier and maps. Concurrent solves over one
//     graph are safe when the graph tolerates concurrent readers.
package astar
