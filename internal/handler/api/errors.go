package api

import "rugboost-api/internal/pkg/errs"

// publicError returns the first target err matches, so wrapped errors still
// surface the sentinel's caller-facing text.
func publicError(err error, targets ...error) (error, bool) {
	for _, t := range targets {
		if errs.Is(err, t) {
			return t, true
		}
	}
	return nil, false
}
