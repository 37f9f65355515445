// Package workflow orchestrates assessment scoring and triangulation using
// Temporal workflows. It defines deterministic control flow with clean
// separation of concerns: Score (self) → Score (observer) → Triangulate.
//
// All quantitative semantics live in the pure internal/domain package; the
// workflow only sequences activities, so replays and retries always converge
// on the same report for the same request.
package workflow
