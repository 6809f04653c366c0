// Package calc computes the suggested gift amount from a validated
// configuration record. It is a pure computation over the record plus an
// injected random source; all input validation happened in the parser.
package calc

import (
	"github.com/iwvelando/gift-calc/internal/cli"
	"github.com/iwvelando/gift-calc/pkg/format"
	"github.com/iwvelando/gift-calc/pkg/mathutil"
	"github.com/iwvelando/gift-calc/pkg/random"
)

const (
	// neutralFriendScore is the midpoint producing an unbiased draw.
	neutralFriendScore = 5.5

	// friendScoreSpan maps the score range onto a bias in [-1, 1].
	friendScoreSpan = 4.5

	// niceRatioCutoff separates the fixed-ratio nice band (scores below it
	// yield score/10 of the base, no variation) from the full calculation.
	niceRatioCutoff = 3.5

	// niceScale divides a low nice score into a fraction of the base.
	niceScale = 10.0
)

// Result holds the computed amount, rounded to the configured decimals, and
// its display string.
type Result struct {
	Amount  float64
	Display string
}

// Calculate produces the final gift amount for the given configuration.
// Identical configuration and source sequence always produce an identical
// result.
func Calculate(cfg cli.ParsedConfig, src random.Source) Result {
	amount := mathutil.RoundTo(rawAmount(cfg, src), cfg.Decimals)
	return Result{
		Amount:  amount,
		Display: format.Amount(amount, cfg.Decimals, cfg.Currency, cfg.RecipientName),
	}
}

func rawAmount(cfg cli.ParsedConfig, src random.Source) float64 {
	// Naughty short-circuit: a zero nice score wins over everything,
	// including the --max/--min overrides.
	if cfg.NiceScore == 0 {
		return 0
	}

	// Low nice scores reduce the gift to a fixed fraction of the base and
	// skip the variation draw entirely.
	if cfg.NiceScore < niceRatioCutoff {
		return cfg.BaseValue * cfg.NiceScore / niceScale
	}

	return mathutil.ApplyPercentage(cfg.BaseValue, variationDraw(cfg, src))
}

// variationDraw picks the percentage adjustment inside
// [-variation, +variation].
func variationDraw(cfg cli.ParsedConfig, src random.Source) float64 {
	if cfg.UseMaximum {
		return cfg.VariationPercent
	}
	if cfg.UseMinimum {
		return -cfg.VariationPercent
	}

	// The friend bias shifts the uniform draw toward the favored extreme:
	// score 5.5 is neutral, 10 piles mass onto +variation, 1 onto -variation.
	bias := FriendBias(cfg.FriendScore)
	u := mathutil.Clamp(src.Float64()+bias/2, 0, 1)
	return (2*u - 1) * cfg.VariationPercent
}

// FriendBias maps a friend score onto a skew in [-1, 1].
func FriendBias(friendScore float64) float64 {
	return mathutil.Clamp((friendScore-neutralFriendScore)/friendScoreSpan, -1, 1)
}
