// Package config builds the immutable service configuration (host, port and
// timeout) through a validating builder.
//
// The Builder accumulates optional fields and finishes with Build, which checks
// that a host was provided and fills in defaults for everything else:
//
//	res := config.NewBuilder().
//	    Host("db.internal").
//	    Port(5432).
//	    Build()
//	if res.IsErr() {
//	    return res.UnwrapErr() // invalid input: Host is required
//	}
//	cfg := res.Unwrap()
//
// Defaults are DefaultPort (8080) and DefaultTimeout (30 seconds). Build does
// not range-check port or timeout; BuildStrict does, using pkg/validator.
//
// Build and BuildStrict are terminal. A builder that has been built is
// consumed, and any further call on it panics with a *variant.ContractViolation.
//
// # Sources
//
// A builder can be pre-filled from the process environment or a YAML document:
//
//	_ = config.LoadEnv(".env")               // optional, via github.com/joho/godotenv
//	b, err := config.FromEnv("APP_")          // APP_HOST, APP_PORT, APP_TIMEOUT
//	b, err := config.FromFile("service.yaml") // host, port, timeout keys
//
// Values that are not present leave the corresponding builder field unset, so
// explicit setters called afterwards still win and defaults still apply.
//
// Environment parsing is delegated to github.com/caarlos0/env/v11 and YAML
// decoding to gopkg.in/yaml.v3. Nothing is cached between calls.
package config
