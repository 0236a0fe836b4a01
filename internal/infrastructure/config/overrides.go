package config

// Overrides holds values given on the command line. A nil field was not
// set by the user and leaves the file or default value in place.
type Overrides struct {
	StartURL                *string
	Timeout                 *int
	ZoomFactor              *float64
	AllowPopups             *bool
	Fullscreen              *bool
	Navigation              *bool
	IconTheme               *string
	DefaultUser             *string
	DefaultPassword         *string
	IgnoreCertificateErrors *bool
	Debug                   bool
}

// apply overlays the overrides onto cfg.
func (o Overrides) apply(cfg *Config) {
	setIf(&cfg.StartURL, o.StartURL)
	setIf(&cfg.Timeout, o.Timeout)
	setIf(&cfg.ZoomFactor, o.ZoomFactor)
	setIf(&cfg.AllowPopups, o.AllowPopups)
	setIf(&cfg.Fullscreen, o.Fullscreen)
	setIf(&cfg.Navigation, o.Navigation)
	setIf(&cfg.IconTheme, o.IconTheme)
	setIf(&cfg.DefaultUser, o.DefaultUser)
	setIf(&cfg.DefaultPassword, o.DefaultPassword)
	setIf(&cfg.IgnoreCertificateErrors, o.IgnoreCertificateErrors)
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
