package config

import (
	"os"
	"testing"
)

func TestConfig_LoadFromFile(t *testing.T) {
	testConfig := `[Block]
CRCEnable=0

[Trace]
DatabasePath=/tmp/rsfec19_trace_test.db

[Transport]
LocalPort=43000
RemoteAddress=10.0.0.5
RemotePort=43001
ErrorRate=0.01`

	tmpfile, err := os.CreateTemp("", "test_config_*.ini")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(testConfig)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	config := NewConfig(tmpfile.Name())
	if err := config.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.GetBlockCRCEnable() {
		t.Error("GetBlockCRCEnable() = true, want false")
	}
	if config.GetTraceDatabasePath() != "/tmp/rsfec19_trace_test.db" {
		t.Errorf("GetTraceDatabasePath() = %q, want %q", config.GetTraceDatabasePath(), "/tmp/rsfec19_trace_test.db")
	}
	if config.GetTransportLocalPort() != 43000 {
		t.Errorf("GetTransportLocalPort() = %d, want 43000", config.GetTransportLocalPort())
	}
	if config.GetTransportRemoteAddress() != "10.0.0.5" {
		t.Errorf("GetTransportRemoteAddress() = %q, want %q", config.GetTransportRemoteAddress(), "10.0.0.5")
	}
	if config.GetTransportRemotePort() != 43001 {
		t.Errorf("GetTransportRemotePort() = %d, want 43001", config.GetTransportRemotePort())
	}
	if config.GetTransportErrorRate() != 0.01 {
		t.Errorf("GetTransportErrorRate() = %f, want 0.01", config.GetTransportErrorRate())
	}
}

func TestConfig_LoadFromString(t *testing.T) {
	testConfig := `[Transport]
LocalPort=5000
RemoteAddress=192.168.1.1`

	config := NewConfig("")
	if err := config.LoadFromString(testConfig); err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if config.GetTransportLocalPort() != 5000 {
		t.Errorf("GetTransportLocalPort() = %d, want 5000", config.GetTransportLocalPort())
	}
	if config.GetTransportRemoteAddress() != "192.168.1.1" {
		t.Errorf("GetTransportRemoteAddress() = %q, want %q", config.GetTransportRemoteAddress(), "192.168.1.1")
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	config := NewConfig("")

	if !config.GetBlockCRCEnable() {
		t.Error("GetBlockCRCEnable() default = false, want true")
	}
	if config.GetTransportLocalPort() != 42813 {
		t.Errorf("GetTransportLocalPort() default = %d, want 42813", config.GetTransportLocalPort())
	}
	if config.GetTransportErrorRate() != 0 {
		t.Errorf("GetTransportErrorRate() default = %f, want 0", config.GetTransportErrorRate())
	}
}

func TestConfig_InvalidFile(t *testing.T) {
	config := NewConfig("/nonexistent/file.ini")
	if err := config.Load(); err == nil {
		t.Error("Load() with nonexistent file should return error")
	}
}

func TestConfig_BooleanValues(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   bool
	}{
		{"CRCEnable true with 1", "[Block]\nCRCEnable=1", true},
		{"CRCEnable false with 0", "[Block]\nCRCEnable=0", false},
		{"CRCEnable true with yes", "[Block]\nCRCEnable=yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewConfig("")
			if err := config.LoadFromString(tt.config); err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			if got := config.GetBlockCRCEnable(); got != tt.want {
				t.Errorf("GetBlockCRCEnable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_CommentedLines(t *testing.T) {
	testConfig := `[Transport]
RemoteAddress=10.1.1.1
# This is a comment
#RemotePort=9999
RemotePort=4000`

	config := NewConfig("")
	if err := config.LoadFromString(testConfig); err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if config.GetTransportRemoteAddress() != "10.1.1.1" {
		t.Errorf("GetTransportRemoteAddress() = %q, want %q", config.GetTransportRemoteAddress(), "10.1.1.1")
	}
	if config.GetTransportRemotePort() != 4000 {
		t.Errorf("GetTransportRemotePort() = %d, want 4000", config.GetTransportRemotePort())
	}
}

func TestConfig_MissingSection(t *testing.T) {
	testConfig := `[Nonexistent Section]
SomeKey=SomeValue`

	config := NewConfig("")
	if err := config.LoadFromString(testConfig); err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if config.GetTransportLocalPort() != 42813 {
		t.Errorf("GetTransportLocalPort() with missing section = %d, want default 42813", config.GetTransportLocalPort())
	}
}

func BenchmarkConfig_Load(b *testing.B) {
	testConfig := `[Transport]
LocalPort=42813
RemoteAddress=127.0.0.1
RemotePort=42814`

	tmpfile, err := os.CreateTemp("", "bench_config_*.ini")
	if err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(testConfig)); err != nil {
		b.Fatalf("Failed to write temp file: %v", err)
	}
	if err := tmpfile.Close(); err != nil {
		b.Fatalf("Failed to close temp file: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		config := NewConfig(tmpfile.Name())
		config.Load()
	}
}
