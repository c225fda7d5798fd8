// SPDX-License-Identifier: MIT

package verify

import "errors"

// Sentinel errors. Loaders wrap them with file/line context; match with
// errors.Is.
var (
	// ErrUnsupportedVersion: the table version does not parse or falls
	// outside SupportedVersions.
	ErrUnsupportedVersion = errors.New("verify: unsupported table version")

	// ErrMalformedTable: the document is not a table at all
	// (invalid JSON/YAML, missing cases list).
	ErrMalformedTable = errors.New("verify: malformed table")

	// ErrMalformedCase: a single case is incomplete or inconsistent
	// (missing coefficient, non-finite value, root list not matching count).
	ErrMalformedCase = errors.New("verify: malformed test case")

	// ErrUnknownFormat: the table format cannot be determined.
	ErrUnknownFormat = errors.New("verify: unknown table format")
)
