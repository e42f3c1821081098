package svgicon

import (
	"log/slog"

	"github.com/benoitkugler/svgcoord/svgcoord"
)

// Option configures ReadIconStream and ReadIcon.
//
// Example:
//
//	icon, err := svgicon.ReadIcon("icon.svg",
//		svgicon.WithErrorMode(svgicon.StrictErrorMode),
//		svgicon.WithDPI(96))
type Option func(*options)

type options struct {
	errorMode ErrorMode
	logger    *slog.Logger
	context   svgcoord.Context
}

func defaultOptions() options {
	return options{
		errorMode: IgnoreErrorMode,
		logger:    nil, // resolved to svgcoord.Logger() when reading
		context:   svgcoord.DefaultContext,
	}
}

// WithErrorMode sets how invalid attributes are reported.
// The default is IgnoreErrorMode.
func WithErrorMode(mode ErrorMode) Option {
	return func(o *options) {
		o.errorMode = mode
	}
}

// WithLogger sets the logger used in WarnErrorMode, instead
// of the package logger of svgcoord.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithContext sets the initial graphics state: resolution, font
// and initial viewport, used to resolve the lengths of the root element.
func WithContext(ctx svgcoord.Context) Option {
	return func(o *options) {
		o.context = ctx
	}
}

// WithDPI sets the resolution of the initial graphics state,
// in pixels per inch.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		o.context.PixelsPerInch = dpi
	}
}
