package html5go

import (
	"github.com/kestrelparse/html5go/treebuilder"
)

// config holds parser configuration.
type config struct {
	encoding        string
	fragmentContext *treebuilder.FragmentContext
	iframeSrcdoc    bool
	strict          bool
	collectErrors   bool
	xmlCoercion     bool
	maxNestingDepth int
}

// maxNestingDepthUnset marks that the caller never called WithMaxNestingDepth,
// so the tree builder's own default (see treebuilder.defaultMaxNestingDepth)
// applies. This lets WithMaxNestingDepth(0) mean "no limit" unambiguously.
const maxNestingDepthUnset = -1

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{maxNestingDepth: maxNestingDepthUnset}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithEncoding sets the encoding label that ParseBytes passes to
// encoding.Decode. Only UTF-8 labels ("utf-8", "utf8", "unicode-1-1-utf-8")
// are accepted; any other label makes ParseBytes return
// encoding.ErrInvalidEncoding. Parse and ParseFragment ignore this option.
func WithEncoding(enc string) Option {
	return func(c *config) {
		c.encoding = enc
	}
}

// WithFragment records an HTML fragment context in the config. Parse does not
// read it, and ParseFragment replaces it with its own context argument, so
// neither entry point's result depends on this option.
func WithFragment(tagName string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: "html",
		}
	}
}

// WithFragmentNS records a fragment context with a namespace ("svg" or
// "mathml") in the config. As with WithFragment, Parse does not read it and
// ParseFragment replaces it with an HTML-namespace context, so SVG or MathML
// fragment contexts are not reachable through these entry points.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode, the parser treats the input as the srcdoc attribute value.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, the first parse error causes Parse to return an error.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors are collected and returned as a ParseErrors error
// (which can be unwrapped to get individual errors).
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}

// WithXMLCoercion enables XML coercion in the tokenizer, adjusting how
// comments and text containing disallowed characters are emitted to match
// the html5lib XML-compatibility test suite rather than browser behavior.
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}

// WithMaxNestingDepth bounds how deeply elements may nest before the parser
// starts dropping further start tags rather than growing the tree without
// limit. Pass 0 to disable the limit entirely. Without this option, a
// built-in default applies.
func WithMaxNestingDepth(depth int) Option {
	return func(c *config) {
		c.maxNestingDepth = depth
	}
}
