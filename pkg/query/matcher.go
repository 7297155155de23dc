// Package query decides whether submitted free text, or a clicked
// suggestion chip, should redirect the user to the external Sentinel
// analytics service. Matching happens on canonical (alphanumeric-only,
// lower-cased) forms so the one supported question survives typos and
// punctuation differences.
package query

import "strings"

// RedirectURL is the external service a supported question navigates to.
const RedirectURL = "https://app.causify.ai/sentinel"

// SupportedQuery is the one analytic question the demo can answer.
const SupportedQuery = "Predict the main bearing failures in the next 2 months?"

var supportedCanonical = Normalize(SupportedQuery)

// MatchesSupportedQuery reports whether text is equivalent to the
// supported question. It is true on an exact canonical match, or when the
// canonical form mentions a prediction of main-bearing ("mainbearing" or
// "mb") trouble over the two-month horizon. Deliberately loose: substring
// checks with no ordering or proximity constraints.
func MatchesSupportedQuery(text string) bool {
	canonical := Normalize(text)
	if canonical == "" {
		return false
	}
	if canonical == supportedCanonical {
		return true
	}
	return strings.Contains(canonical, "predict") &&
		(strings.Contains(canonical, "mainbearing") || strings.Contains(canonical, "mb")) &&
		(strings.Contains(canonical, "next2months") ||
			strings.Contains(canonical, "nexttwomonths") ||
			strings.Contains(canonical, "next60days"))
}

// ChipAction is the outcome of clicking a suggestion chip.
type ChipAction int

const (
	// ChipNoAction means the click changes nothing.
	ChipNoAction ChipAction = iota
	// ChipRedirect means the click navigates to RedirectURL.
	ChipRedirect
)

func (a ChipAction) String() string {
	if a == ChipRedirect {
		return "redirect"
	}
	return "no_action"
}

// ResolveChipSelection maps a clicked suggestion chip to its action. Only
// chip 0, the supported question, redirects; every other index, including
// out-of-range ones, is a no-op rather than an error.
func ResolveChipSelection(index int) ChipAction {
	if index == 0 {
		return ChipRedirect
	}
	return ChipNoAction
}

// Decision is the redirect verdict for a submitted question.
type Decision struct {
	Match    bool   `json:"match"`
	Redirect string `json:"redirect,omitempty"`
}

// Decider resolves match verdicts against a configurable redirect
// target. The zero value redirects to RedirectURL.
type Decider struct {
	RedirectURL string
}

func (d Decider) target() string {
	if d.RedirectURL == "" {
		return RedirectURL
	}
	return d.RedirectURL
}

// Decide evaluates free text and returns the redirect decision.
func (d Decider) Decide(text string) Decision {
	if MatchesSupportedQuery(text) {
		return Decision{Match: true, Redirect: d.target()}
	}
	return Decision{}
}

// DecideChip evaluates a chip click and returns the redirect decision.
func (d Decider) DecideChip(index int) Decision {
	if ResolveChipSelection(index) == ChipRedirect {
		return Decision{Match: true, Redirect: d.target()}
	}
	return Decision{}
}

// Decide evaluates free text against the default redirect target.
func Decide(text string) Decision { return Decider{}.Decide(text) }

// DecideChip evaluates a chip click against the default redirect target.
func DecideChip(index int) Decision { return Decider{}.DecideChip(index) }
