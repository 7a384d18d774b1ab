// Package task provides the cooperative cancellation and progress-reporting
// primitive around which the rest of the module is built.  A TaskHandle is
// the root cancellation flag of one logical task; named job sets created
// from it describe successive phases of work and count completed sub-jobs.
// Cancellation is advisory: Stop only flips a flag, and takes effect when
// the tracked code next calls StartedJob, FinishedJob or CheckStatus on one
// of the handle's job sets.  Observers registered on a handle are invoked
// synchronously on every state change.
//
// NullTaskHandle and NullJobSet implement the same contract as inert
// stand-ins so that call sites that always require a handle need no
// conditional logic when tracking is not wanted.
package task
