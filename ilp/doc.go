// Package ilp implements the ILP Oracle Loop: a counterexample-guided
// search that alternates between a 0/1 + integer linear relaxation (the
// Petri net state equation) and the symbolic engine's exact reachability
// oracle, for two tasks — deadlock-marking existence and weighted-marking
// maximization.
//
// What
//
//   - Model/Constraint/Objective describe a small mixed-integer linear
//     program: binary place variables Mi, non-negative integer firing
//     variables σj, and (deadlock task only) binary disjunction selectors
//     zj.
//   - A from-scratch branch-and-bound solver (bbEngine) finds an optimal
//     assignment, using interval bound propagation in place of a simplex
//     relaxation to prune the search tree.
//   - FindDeadlock and Maximize each build their own Model, then drive the
//     shared outer oracle loop: solve, extract a candidate marking, ask
//     the BDD oracle, and on refusal inject a no-good cut that excludes
//     exactly that candidate before retrying.
//
// Why
//
//   - The state equation alone only over-approximates reachability, so an
//     outer counterexample loop is needed to reject spurious relaxation
//     solutions; this package implements both the relaxation solver and
//     that loop as genuine application code in an exact-search idiom,
//     rather than delegating to an external MILP package.
//
// Collaborator contract
//
//	The solver exposes exactly what a caller needs from an integer
//	programming backend: add binary/integer variables, add linear
//	equality/inequality constraints, set a linear objective, solve, and
//	query optimal-status plus variable values. Nothing more.
package ilp
