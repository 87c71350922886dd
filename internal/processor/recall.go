package processor

import "github.com/jeffrimko/quickwin/internal/history"

// recallNav maps Prev/Next navigation onto the history cursor. The returned
// bool reports whether the event was a recall event; for recall events the
// caller returns the output as-is.
func recallNav(hist *history.Manager, in Input) (Output, bool) {
	switch in.Nav {
	case NavPrev:
		var out Output
		if cmd, ok := hist.Older(in.Text); ok {
			out.SetInput(cmd)
		}
		return out, true
	case NavNext:
		var out Output
		if cmd, ok := hist.Newer(in.Text); ok {
			out.SetInput(cmd)
		}
		return out, true
	}
	return Output{}, false
}
