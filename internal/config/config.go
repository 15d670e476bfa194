// Package config parses the rsfec19 runtime configuration file: an
// INI-style document with [Section] headers and key=value lines, read
// with bufio the same way the rest of this codebase reads line-oriented
// text.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime configuration for a single encode/decode
// session: whether the CRC-18 check is carried inside the protected
// payload, where run traces are persisted, and the transport harness's
// addressing and injected error rate.
type Config struct {
	filename string

	// Block section
	blockCRCEnable bool

	// Trace section
	traceDatabasePath string

	// Transport section
	transportLocalPort     uint32
	transportRemoteAddress string
	transportRemotePort    uint32
	transportErrorRate     float64
}

// NewConfig creates a configuration instance seeded with the defaults
// used when a key is absent from the file.
func NewConfig(filename string) *Config {
	return &Config{
		filename:               filename,
		blockCRCEnable:         true,
		traceDatabasePath:      "data/rsfec19_trace.db",
		transportLocalPort:     42813,
		transportRemoteAddress: "127.0.0.1",
		transportRemotePort:    42814,
		transportErrorRate:     0,
	}
}

// Load reads and parses the configuration file named at construction.
func (c *Config) Load() error {
	file, err := os.Open(c.filename)
	if err != nil {
		return fmt.Errorf("failed to open config file %s: %w", c.filename, err)
	}
	defer file.Close()

	return c.parseINI(file)
}

// LoadFromString loads configuration from an in-memory document,
// useful for tests.
func (c *Config) LoadFromString(data string) error {
	return c.parseINIString(data)
}

func (c *Config) parseINI(file *os.File) error {
	scanner := bufio.NewScanner(file)
	return c.parseINIScanner(scanner)
}

func (c *Config) parseINIString(data string) error {
	scanner := bufio.NewScanner(strings.NewReader(data))
	return c.parseINIScanner(scanner)
}

func (c *Config) parseINIScanner(scanner *bufio.Scanner) error {
	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 || line[0] == '#' {
			continue
		}

		if line[0] == '[' && line[len(line)-1] == ']' {
			currentSection = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch currentSection {
		case "Block":
			c.parseBlockSection(key, value)
		case "Trace":
			c.parseTraceSection(key, value)
		case "Transport":
			c.parseTransportSection(key, value)
		}
	}

	return scanner.Err()
}

func (c *Config) parseBlockSection(key, value string) {
	switch key {
	case "CRCEnable":
		c.blockCRCEnable = c.parseBool(value)
	}
}

func (c *Config) parseTraceSection(key, value string) {
	switch key {
	case "DatabasePath":
		c.traceDatabasePath = value
	}
}

func (c *Config) parseTransportSection(key, value string) {
	switch key {
	case "LocalPort":
		if v, err := strconv.ParseUint(value, 10, 32); err == nil {
			c.transportLocalPort = uint32(v)
		}
	case "RemoteAddress":
		c.transportRemoteAddress = value
	case "RemotePort":
		if v, err := strconv.ParseUint(value, 10, 32); err == nil {
			c.transportRemotePort = uint32(v)
		}
	case "ErrorRate":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			c.transportErrorRate = v
		}
	}
}

func (c *Config) parseBool(value string) bool {
	return value == "1" || strings.ToLower(value) == "true" || strings.ToLower(value) == "yes"
}

// GetBlockCRCEnable reports whether the CRC-18 check is inserted at
// word 120 of each block.
func (c *Config) GetBlockCRCEnable() bool { return c.blockCRCEnable }

// GetTraceDatabasePath returns the sqlite file path used for run-trace
// persistence.
func (c *Config) GetTraceDatabasePath() string { return c.traceDatabasePath }

// GetTransportLocalPort returns the local UDP port the transport
// harness binds to.
func (c *Config) GetTransportLocalPort() uint32 { return c.transportLocalPort }

// GetTransportRemoteAddress returns the peer address frames are sent to.
func (c *Config) GetTransportRemoteAddress() string { return c.transportRemoteAddress }

// GetTransportRemotePort returns the peer UDP port.
func (c *Config) GetTransportRemotePort() uint32 { return c.transportRemotePort }

// GetTransportErrorRate returns the per-bit injected error probability
// used by the loopback error injector (0 disables it).
func (c *Config) GetTransportErrorRate() float64 { return c.transportErrorRate }
