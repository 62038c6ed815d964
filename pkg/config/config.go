package config

import (
	"net"
	"strconv"
	"time"
)

const (
	DefaultPort    uint16 = 8080
	DefaultTimeout uint64 = 30
)

// Config is the validated, read-only service configuration.
// It can only be obtained from a successful Build.
type Config struct {
	host    string
	port    uint16
	timeout uint64
}

// Host returns the configured host.
func (c Config) Host() string {
	return c.host
}

// Port returns the configured port.
func (c Config) Port() uint16 {
	return c.port
}

// Timeout returns the timeout in seconds.
func (c Config) Timeout() uint64 {
	return c.timeout
}

// TimeoutDuration returns the timeout as a time.Duration.
func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.timeout) * time.Second
}

// Addr returns host:port suitable for net.Dial.
func (c Config) Addr() string {
	return net.JoinHostPort(c.host, strconv.FormatUint(uint64(c.port), 10))
}
