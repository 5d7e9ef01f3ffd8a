// Package results loads the CSV reports written by the communication
// characterization harness and computes aggregate transfer rates from them.
//
// A report directory holds one or more CSV files per test category. Each
// category is described by a Rule: a filename pattern with capture groups,
// a label template, and the kind of report (FIFO or memory) the files hold.
// Load scans a directory with a set of rules and returns one TestResult per
// category that had at least one matching file.
//
// Rates are always combined as total bytes over total time (AvgRate), which is
// the time weighted harmonic mean of the per-trial rates. The arithmetic mean of
// the per-trial rates is never used.
//
// LoadSweep repeats Load over the blkSizeBytes<N> sub-directories of a sweep
// and orders the resulting points by block size.
package results
