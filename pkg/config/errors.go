package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into config fields.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrDecodingConfig is returned when a YAML document cannot be decoded.
	ErrDecodingConfig = errors.New("failed to decode config document")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)

// errHostRequired is the message of the InvalidInput error produced by Build.
const errHostRequired = "Host is required"
