// Package report implements the diagnostic aggregation engine shared by
// all pipeline phases.
//
// # Purpose
//
//   - Provide the severity-gated dispatch protocol that decides, per
//     message, whether it is dropped, recorded, or aborts the run.
//   - Track the worst severity seen across a run (the watermark) so
//     success queries never require re-scanning stored messages.
//   - Offer light-weight sinks (Bag, DedupSink, LogrusSink) that let
//     producers emit messages without coupling to concrete storage or
//     formatting layers.
//
// # Scope
//
// Package report performs no formatting, IO, or CLI integration of its
// own. Rendering lives in internal/reportfmt; orchestration across files
// lives in internal/driver. The only externally visible effect of a
// dispatch is the Sink.Record call.
//
// # Dispatch protocol
//
// Every message enters through one of the per-level entry points (Debug,
// Info, Warn, Error), which stamp the severity and run the shared
// dispatch:
//
//  1. severity >= abort threshold: the dispatch fails with an AbortError
//     carrying the message; nothing is recorded.
//  2. The watermark is raised if the severity exceeds it, even when the
//     message is below the log threshold.
//  3. severity >= log threshold: the message is forwarded to the Sink.
//
// Merge replays an already-recorded sequence through the same protocol
// under the absorbing Engine's thresholds, which is what makes nested
// sub-runs composable: a child Engine runs with its own policy, and the
// parent re-judges the child's output with its own.
//
// # Concurrency
//
// Engines are single-owner values. Every dispatch mutates the watermark,
// so an Engine must not be shared across goroutines without external
// synchronization; run one Engine per sequential (sub-)run and merge the
// results. Sinks are append-only and shared read-mostly.
package report
