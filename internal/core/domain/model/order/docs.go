// Package order contains the order aggregate and its lifecycle state
// machine. The aggregate is the single authority for status transitions,
// their role constraints, and the timestamp side effects they carry
// (startedAt on acceptance, endedAt on completion).
//
// "Late" is a displayed state, not a stored one: a NEW order past its
// delivery time is presented as late by DisplayStatus but keeps NEW in
// storage until a real transition is applied.
package order
