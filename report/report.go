// SPDX-License-Identifier: MIT
// Package report: the Generate pipeline.
//
// Pipeline (one-directional):
//
//	correlation → parallel analysis → EFA (varimax) → reliability family
//	→ validity metrics → interpretation → recommendations
//
// Every stage consumes only the stages before it; nothing here mutates the
// caller's response matrix.

package report

import (
	"fmt"
	"math"

	"github.com/psymetlab/psymet/efa"
	"github.com/psymetlab/psymet/matops"
	"github.com/psymetlab/psymet/reliability"
	"github.com/psymetlab/psymet/validity"
)

// Generate runs the complete psychometric analysis over an n×p response
// matrix and assembles the comprehensive report.
//
// Implementation:
//   - Stage 1: Validate the matrix and the optional item-ID list; build the
//     correlation matrix once and share it with every later stage.
//   - Stage 2: Parallel analysis (floored at MinParallelIterations simulated
//     matrices) chooses the factor count.
//   - Stage 3: EFA with the configured rotation; each item's representative
//     loading is the absolute loading on its primary factor.
//   - Stage 4: Cronbach's alpha and split-half from the raw data, McDonald's
//     omega from the representative loadings.
//   - Stage 5: AVE and composite reliability from the representative
//     loadings; with 2+ factors the full validity.Assess supplies the
//     convergent/discriminant verdicts, with a single factor the thresholds
//     are applied directly and discriminant validity holds vacuously.
//   - Stage 6: Qualitative interpretation and ordered recommendations.
//
// Errors:
//   - ErrIDCountMismatch; matops/efa/reliability/validity sentinels from the
//     stages, matched via errors.Is.
//
// Complexity: dominated by parallel analysis,
// Time O(Iterations · (n·p² + p·MaxIter·p²)).
func Generate(data matops.Matrix, opts Options) (*Report, error) {
	// Stage 1 (Validate + IDs + Correlation).
	if err := matops.ValidateResponseMatrix(data); err != nil {
		return nil, err
	}
	p := data.Cols()
	ids := opts.ItemIDs
	if len(ids) == 0 {
		ids = make([]string, p)
		for j := 0; j < p; j++ {
			ids[j] = fmt.Sprintf("item_%d", j+1)
		}
	} else if len(ids) != p {
		return nil, ErrIDCountMismatch
	}

	corr, err := matops.Correlation(data)
	if err != nil {
		return nil, err
	}

	// Stage 2 (Factor count via parallel analysis).
	par := opts.Parallel
	if par.Iterations < MinParallelIterations {
		par.Iterations = MinParallelIterations
	}
	suggested, err := efa.ParallelAnalysis(data, par)
	if err != nil {
		return nil, err
	}

	// Stage 3 (EFA + representative loadings).
	efaRes, err := efa.EFA(data, suggested, opts.EFA)
	if err != nil {
		return nil, err
	}
	repLoadings := make([]float64, p) // |primary-factor loading| per item
	assignments := make([]int, p)
	loadingRecords := make([]ItemLoading, p)
	for i, it := range efaRes.Items {
		repLoadings[i] = math.Abs(it.Loadings[it.Primary])
		assignments[i] = it.Primary
		loadingRecords[i] = ItemLoading{
			ItemID:        ids[i],
			Loadings:      it.Loadings,
			Communality:   it.Communality,
			PrimaryFactor: it.Primary,
		}
	}

	// Stage 4 (Reliability family).
	alpha, err := reliability.CronbachAlpha(data)
	if err != nil {
		return nil, err
	}
	omega, err := reliability.McDonaldOmega(repLoadings)
	if err != nil {
		return nil, err
	}
	split, err := reliability.SplitHalf(data)
	if err != nil {
		return nil, err
	}

	// Stage 5 (Validity).
	ave, err := validity.AVE(repLoadings)
	if err != nil {
		return nil, err
	}
	cr, err := validity.CompositeReliability(repLoadings)
	if err != nil {
		return nil, err
	}
	convergentOK := ave >= validity.ThresholdAVE && cr >= validity.ThresholdCR
	discriminantOK := true // vacuous with a single factor
	if len(efaRes.Eigenvalues) > 1 {
		assessment, aerr := validity.Assess(efaRes.Items, corr, assignments)
		if aerr != nil {
			return nil, aerr
		}
		convergentOK = assessment.ConvergentOK
		discriminantOK = assessment.DiscriminantOK
	}

	// Stage 6 (Interpretation + recommendations, fixed order).
	recs := make([]string, 0, 4)
	if alpha < reliability.ThresholdAcceptable {
		recs = append(recs, fmt.Sprintf(
			"Cronbach's alpha is %.2f, below the acceptable threshold of %.2f: revise or remove weakly correlated items to improve internal consistency.",
			alpha, reliability.ThresholdAcceptable))
	}
	if alpha > AlphaTooHigh {
		recs = append(recs, fmt.Sprintf(
			"Cronbach's alpha is %.2f, above %.2f: items may be redundant; consider removing near-duplicate items to shorten the scale.",
			alpha, AlphaTooHigh))
	}
	if ave < validity.ThresholdAVE {
		recs = append(recs, fmt.Sprintf(
			"Average variance extracted is %.2f, below %.2f: the factor explains less than half of the item variance, a convergent validity concern.",
			ave, validity.ThresholdAVE))
	}
	for i := 0; i < p; i++ {
		if repLoadings[i] < MinPrimaryLoading {
			recs = append(recs, fmt.Sprintf(
				"Item %s loads %.2f on its primary factor, below %.2f: review its wording or consider dropping it.",
				ids[i], repLoadings[i], MinPrimaryLoading))
		}
	}

	return &Report{
		Reliability: Reliability{
			CronbachAlpha:  alpha,
			McDonaldOmega:  omega,
			SplitHalf:      split,
			Interpretation: reliability.Interpret(alpha),
		},
		FactorAnalysis: FactorAnalysis{
			SuggestedFactors:  suggested,
			Eigenvalues:       efaRes.Eigenvalues,
			VarianceExplained: efaRes.VarianceExplained,
			Loadings:          loadingRecords,
		},
		Validity: Validity{
			AVE:                  ave,
			CompositeReliability: cr,
			ConvergentOK:         convergentOK,
			DiscriminantOK:       discriminantOK,
		},
		Recommendations: recs,
	}, nil
}
