package logging

import (
	"context"
	"sync"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/rs/zerolog"
)

var glibHandlerOnce sync.Once

// InstallGLibLogHandler routes GLib, GTK and WebKit messages to logger.
// Call it before GTK is initialised. Debug messages are only forwarded when
// enableDebug is set.
func InstallGLibLogHandler(ctx context.Context, logger zerolog.Logger, enableDebug bool) {
	glibHandlerOnce.Do(func() {
		glib.LogSetWriter(func(level glib.LogLevelFlags, fields map[string]interface{}) glib.LogWriterOutput {
			if level&glib.LogLevelDebug != 0 && !enableDebug {
				return glib.LogWriterHandled
			}
			event := glibEvent(logger, level)
			if domain, ok := fields["GLIB_DOMAIN"].(string); ok && domain != "" {
				event = event.Str("glib_domain", domain)
			}
			message, _ := fields["MESSAGE"].(string)
			event.Msg(message)
			return glib.LogWriterHandled
		})
		FromContext(ctx).Debug().Bool("debug_enabled", enableDebug).Msg("GLib log handler installed")
	})
}

func glibEvent(logger zerolog.Logger, level glib.LogLevelFlags) *zerolog.Event {
	switch {
	case level&(glib.LogLevelError|glib.LogLevelCritical) != 0:
		return logger.Error()
	case level&glib.LogLevelWarning != 0:
		return logger.Warn()
	case level&(glib.LogLevelMessage|glib.LogLevelInfo) != 0:
		return logger.Info()
	default:
		return logger.Debug()
	}
}
