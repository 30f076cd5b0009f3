package render

// Option configures HTML rendering.
type Option func(*config)

type config struct {
	newlines    bool
	frontMatter bool
}

// WithNewlines puts a newline after every block-level element.
func WithNewlines(enabled bool) Option {
	return func(cfg *config) {
		cfg.newlines = enabled
	}
}

// WithFrontMatter emits the front matter table as <meta> tags before the body.
func WithFrontMatter(enabled bool) Option {
	return func(cfg *config) {
		cfg.frontMatter = enabled
	}
}
