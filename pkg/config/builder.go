package config

import (
	"strings"

	"github.com/dmitrymomot/typekit/pkg/apperror"
	"github.com/dmitrymomot/typekit/pkg/validator"
	"github.com/dmitrymomot/typekit/pkg/variant"
)

const (
	maxHostLength  = 253
	maxTimeoutSecs = 86400
)

// Builder accumulates optional configuration fields until Build is called.
type Builder struct {
	host     variant.Maybe[string]
	port     variant.Maybe[uint16]
	timeout  variant.Maybe[uint64]
	consumed bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Host sets the host. A blank host is treated as unset by Build.
func (b *Builder) Host(host string) *Builder {
	b.ensureOpen("Builder.Host")
	b.host = variant.Some(host)
	return b
}

// Port sets the port. Zero is kept as is; only BuildStrict rejects it.
func (b *Builder) Port(port uint16) *Builder {
	b.ensureOpen("Builder.Port")
	b.port = variant.Some(port)
	return b
}

// Timeout sets the timeout in seconds.
func (b *Builder) Timeout(seconds uint64) *Builder {
	b.ensureOpen("Builder.Timeout")
	b.timeout = variant.Some(seconds)
	return b
}

// Build consumes the builder and returns the Config, or an InvalidInput error
// when no host was set. Port and timeout fall back to their defaults.
func (b *Builder) Build() variant.Outcome[Config, error] {
	b.ensureOpen("Builder.Build")
	b.consumed = true
	return b.assemble()
}

// BuildStrict behaves like Build and additionally range-checks every field.
// Range failures are reported as InvalidInput wrapping validator.ValidationErrors.
func (b *Builder) BuildStrict() variant.Outcome[Config, error] {
	b.ensureOpen("Builder.BuildStrict")
	b.consumed = true

	return variant.AndThen(b.assemble(), func(cfg Config) variant.Outcome[Config, error] {
		err := validator.Apply(
			validator.MaxLen("host", cfg.host, maxHostLength),
			validator.NoWhitespace("host", cfg.host),
			validator.Min("port", cfg.port, 1),
			validator.Between("timeout", cfg.timeout, 1, maxTimeoutSecs),
		)
		if err != nil {
			return variant.Err[Config](error(apperror.Wrap(apperror.KindInvalidInput, "invalid configuration", err)))
		}
		return variant.Ok[Config, error](cfg)
	})
}

func (b *Builder) assemble() variant.Outcome[Config, error] {
	host := variant.Filter(b.host, func(h string) bool {
		return strings.TrimSpace(h) != ""
	})
	if host.IsNone() {
		return variant.Err[Config](error(apperror.InvalidInput(errHostRequired)))
	}

	return variant.Ok[Config, error](Config{
		host:    host.Unwrap(),
		port:    b.port.UnwrapOr(DefaultPort),
		timeout: b.timeout.UnwrapOr(DefaultTimeout),
	})
}

func (b *Builder) ensureOpen(op string) {
	if b.consumed {
		variant.Violate(op, "builder already consumed by Build", nil)
	}
}
