package render

// Logo points at the company logo file. Extension selects the drawing path:
// .svg goes through the vector writer, everything else is treated as a
// raster image. Width/Height of 0 keep the image's natural size.
type Logo struct {
	Path   string
	Width  float64
	Height float64
}

// Config is the defaults provider for the renderer. Any optional invoice
// field that is absent falls back to the same-named field here. Construct
// one explicitly and treat it as read-only while renders are in flight;
// concurrent renders sharing a Config must not mutate it.
type Config struct {
	PageSize       string // "Letter", "A4", "Legal"
	CompanyName    string
	CompanyDetails string // newline separated lines
	Logo           Logo
	Currency       string // ISO 4217 code
	DateFormat     string // Go reference-time layout
	Locale         string // BCP 47 tag for label lookup
}

// DefaultConfig returns the stock defaults: US Letter, USD, English labels.
// No logo is configured by default; rendering skips the logo block until a
// path is set.
func DefaultConfig() *Config {
	return &Config{
		PageSize:       "Letter",
		CompanyName:    "Awesome Corp",
		CompanyDetails: "awesomecorp.com",
		Currency:       "USD",
		DateFormat:     "January 2, 2006",
		Locale:         "en",
	}
}
