// SPDX-License-Identifier: MIT

package reliability

// Interpretation thresholds for internal-consistency coefficients
// (single source of truth; the report layer reuses these).
const (
	// ThresholdExcellent — α ≥ 0.90 reads "excellent".
	ThresholdExcellent = 0.90

	// ThresholdGood — α ≥ 0.80 reads "good".
	ThresholdGood = 0.80

	// ThresholdAcceptable — α ≥ 0.70 reads "acceptable"; the conventional
	// minimum for research use.
	ThresholdAcceptable = 0.70

	// ThresholdQuestionable — α ≥ 0.60 reads "questionable".
	ThresholdQuestionable = 0.60
)

// Interpret maps a reliability coefficient onto the conventional qualitative
// scale: excellent / good / acceptable / questionable / unacceptable.
// Complexity: O(1).
func Interpret(alpha float64) string {
	switch {
	case alpha >= ThresholdExcellent:
		return "excellent"
	case alpha >= ThresholdGood:
		return "good"
	case alpha >= ThresholdAcceptable:
		return "acceptable"
	case alpha >= ThresholdQuestionable:
		return "questionable"
	default:
		return "unacceptable"
	}
}
