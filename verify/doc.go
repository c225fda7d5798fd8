// SPDX-License-Identifier: MIT

// Package verify checks the solver against a fixed regression table.
//
// A Table is an immutable, versioned, ordered sequence of TestCase records.
// A Verifier re-solves every case and compares the RootCount and the
// meaningful roots with a numeric.Comparator. A mismatch is a failed Result,
// never an error: verification always runs through every case.
//
// Tables come from DefaultTable (built in) or from files:
//
//	FormatYAML — version + cases list, decoded with gopkg.in/yaml.v3
//	FormatJSON — same shape, read with github.com/tidwall/gjson
//	FormatText — one case per line: "a b c root1 root2 count [tolerance]",
//	             count as 0, 1, 2 or -1 (infinite); '#' starts a comment
//
// Versions are semantic versions; loading rejects tables outside
// SupportedVersions.
//
// ⚙️ Usage:
//
//	v := verify.NewVerifier(verify.WithLogger(logger), verify.WithWorkers(4))
//	report, err := v.Run(ctx, verify.DefaultTable())
//	if err != nil {
//	  // context cancelled
//	}
//	for _, r := range report.Failed() {
//	  fmt.Println(r)
//	}
package verify
