// Package blend combines the published holdings of several exchange-traded
// funds into a single blended portfolio weight per underlying security.
//
// The pipeline is deliberately simple and batch-oriented:
//   - Fund Tables: each input file (one per ETF) is read into a cleaned table
//     of (security code, weight within the fund) holdings. Weight columns are
//     tolerant of mixed encodings: "12.3%", "12.3" and 0.123 all normalize to
//     a fraction in [0,1].
//   - Weighting Scheme: the cross-fund policy, either equal weight or an
//     explicit per-fund mapping, resolved into fractions summing to 1 over
//     exactly the funds that loaded successfully.
//   - Aggregation: a full outer join of all fund tables on security code,
//     blending per-fund weights into one total per security, ranked by that
//     total.
//
// Malformed spreadsheet files (typically .xlsx with corrupt style metadata)
// get a second chance through a recovery read, see the tabular subpackage.
//
// This package serves as the foundational logic for the `efw` command-line
// tool.
package blend
