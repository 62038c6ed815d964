package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/typekit/pkg/apperror"
)

// envSource mirrors the builder fields as they appear in the environment.
type envSource struct {
	Host    string `env:"HOST"`
	Port    uint16 `env:"PORT"`
	Timeout uint64 `env:"TIMEOUT"`
}

// fileSource mirrors the builder fields as they appear in a YAML document.
// Pointers keep absent keys distinguishable from zero values.
type fileSource struct {
	Host    *string `yaml:"host"`
	Port    *uint16 `yaml:"port"`
	Timeout *uint64 `yaml:"timeout"`
}

// LoadEnv loads one or more .env files into the process environment.
// With no arguments it loads ".env" from the working directory.
// Variables already present in the environment are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperror.Wrap(apperror.KindNotFound, "env file", errors.Join(ErrLoadingEnvFile, err))
		}
		return apperror.Wrap(apperror.KindIO, "env file", errors.Join(ErrLoadingEnvFile, err))
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}

// FromEnv returns a builder pre-filled from <prefix>HOST, <prefix>PORT and
// <prefix>TIMEOUT. Unset or empty variables leave the field unset.
func FromEnv(prefix string) (*Builder, error) {
	environ := environMap(os.Environ())

	var src envSource
	if err := env.ParseWithOptions(&src, env.Options{
		Prefix:      prefix,
		Environment: environ,
	}); err != nil {
		return nil, apperror.Wrap(apperror.KindInvalidInput, "environment", errors.Join(ErrParsingConfig, err))
	}

	present := func(key string) bool {
		return environ[prefix+key] != ""
	}

	b := NewBuilder()
	if present("HOST") {
		b.Host(src.Host)
	}
	if present("PORT") {
		b.Port(src.Port)
	}
	if present("TIMEOUT") {
		b.Timeout(src.Timeout)
	}
	return b, nil
}

// FromYAML returns a builder pre-filled from a YAML document with the keys
// host, port and timeout. Unknown keys are rejected. An empty document yields
// an empty builder.
func FromYAML(r io.Reader) (*Builder, error) {
	var src fileSource

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&src); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperror.Wrap(apperror.KindIO, "decoding config", errors.Join(ErrDecodingConfig, err))
	}

	b := NewBuilder()
	if src.Host != nil {
		b.Host(*src.Host)
	}
	if src.Port != nil {
		b.Port(*src.Port)
	}
	if src.Timeout != nil {
		b.Timeout(*src.Timeout)
	}
	return b, nil
}

// FromFile opens path and decodes it with FromYAML.
// A missing file is reported as a NotFound error.
func FromFile(path string) (*Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.Wrap(apperror.KindNotFound, path, err)
		}
		return nil, apperror.Wrap(apperror.KindIO, path, err)
	}
	defer f.Close()

	return FromYAML(f)
}

func environMap(pairs []string) map[string]string {
	m := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}
