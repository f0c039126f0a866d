package recycle

import "strings"

// ConfigurationError reports a content container the engine cannot work
// with. It is returned once, at construction, and is not recoverable without
// fixing the host configuration.
type ConfigurationError struct {
	// Layout is set when the content has no layout strategy.
	Layout bool
	// Fitter is set when the content has no size-fitting strategy.
	Fitter bool
	Reason string
}

func (e *ConfigurationError) Error() string {
	var missing []string
	if e.Layout {
		missing = append(missing, "layout")
	}
	if e.Fitter {
		missing = append(missing, "content size fitter")
	}
	msg := "recycle: invalid content configuration"
	if len(missing) > 0 {
		msg += ": missing " + strings.Join(missing, " and ")
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}
