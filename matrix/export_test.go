// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private cofactor kernels.
//
// Purpose:
//   - Expose unexported kernels to matrix_test only; compiled with tests, never in production builds.
//   - Lets tests pin the recursion (det), the copy layout (minorOf) and the parity rule (cofactorSign)
//     without going through the validating public wrappers.

var (
	// ExportedMinorOf exposes minorOf (no validation).
	ExportedMinorOf = minorOf
	// ExportedDet exposes the raw recursive expansion.
	ExportedDet = det
	// ExportedCofactorSign exposes the (-1)^(i+j) rule.
	ExportedCofactorSign = cofactorSign
	// ExportedAsDense exposes the materializing adapter.
	ExportedAsDense = asDense
)

// PanicEpsilonInvalid_TestOnly avoids magic strings in option tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
