// Package workdir manages transient, per-binding workspace directories.
//
// Each binding gets its own uniquely named directory beneath the build
// workspace. Secret files are written owner-only, scripts are marked
// executable, and the whole directory is removed as a unit when the
// binding is released.
//
// Core types:
//   - Dir: one transient directory, created fresh per binding and removed
//     idempotently
//   - Sweep: reclaims transient directories left behind by builds that
//     died before releasing them
package workdir
