package aspx2html

import "context"

// serviceConfig holds settings applied to every conversion.
type serviceConfig struct {
	lang         string
	defaultTitle string
}

// Option customizes a Service.
type Option func(*Service)

// WithLang sets the lang attribute of the generated <html> element.
// Empty values keep the default.
func WithLang(lang string) Option {
	return func(s *Service) {
		if lang != "" {
			s.cfg.lang = lang
		}
	}
}

// WithDefaultTitle sets the title used when the source carries none.
// Empty values keep the default.
func WithDefaultTitle(title string) Option {
	return func(s *Service) {
		if title != "" {
			s.cfg.defaultTitle = title
		}
	}
}

// Service orchestrates the aspx-to-html pipeline.
type Service struct {
	cfg       serviceConfig
	rewriter  sourceRewriter
	assembler documentAssembler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithLang).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{lang: DefaultLang, defaultTitle: DefaultTitle},
		rewriter:  &webFormsRewriter{},
		assembler: newFixedHeadAssembler(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline on one source file and returns the
// generated document. The context is used for cancellation.
//
// An empty source is not an error; it produces the document shell with the
// default title and an empty body.
func (s *Service) Convert(ctx context.Context, input Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	title := extractTitle(input.Source)
	if title == "" {
		title = s.cfg.defaultTitle
	}

	body := s.rewriter.RewriteSource(ctx, input.Source)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	html := s.assembler.AssembleDocument(ctx, body, title, s.cfg.lang)
	return Result{HTML: html, Title: title}, nil
}
