// Package initstate produces the initial states a run explores.
//
// Two strategies:
//
//   - Exhaustive: every one of the 2^N states in index order. Refused with
//     ErrTooWide when N exceeds the configured threshold (DefaultThresholdBits
//     unless WithThreshold says otherwise; never above MaxThresholdBits).
//   - Sampling: SampleSize distinct states drawn uniformly without replacement.
//     For N ≤ 62 a sparse Fisher–Yates shuffle over the index space is used
//     (O(SampleSize) memory, whatever the size of 2^N); wider networks draw raw
//     bits and reject duplicates. A SampleSize above 2^N, or ≤ 0, fails with
//     *SampleSizeError before any state is produced.
//
// Auto picks Exhaustive when N ≤ threshold and Sampling otherwise.
//
// Generators are lazy, finite and non-restartable; they are not safe for
// concurrent use. The same seed always yields the same sequence; seed 0 maps
// to a fixed default seed.
package initstate
