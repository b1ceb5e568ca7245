package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
	viper.SetEnvPrefix("SURFER")
	viper.AutomaticEnv()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Damping", cfg.Damping, 0.85},
		{"Samples", cfg.Samples, 10000},
		{"Tolerance", cfg.Tolerance, 0.001},
		{"MaxIterations", cfg.MaxIterations, 10000},
		{"Telemetry", cfg.Telemetry, ""},
		{"Verbose", cfg.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	os.Setenv("SURFER_DAMPING", "0.6")
	defer os.Unsetenv("SURFER_DAMPING")
	os.Setenv("SURFER_SAMPLES", "500")
	defer os.Unsetenv("SURFER_SAMPLES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Damping != 0.6 {
		t.Errorf("Damping = %v, want 0.6", cfg.Damping)
	}
	if cfg.Samples != 500 {
		t.Errorf("Samples = %d, want 500", cfg.Samples)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		envKey string
		envVal string
	}{
		{"damping too high", "SURFER_DAMPING", "1.5"},
		{"damping zero", "SURFER_DAMPING", "0"},
		{"negative samples", "SURFER_SAMPLES", "-1"},
		{"zero tolerance", "SURFER_TOLERANCE", "0"},
		{"zero iteration cap", "SURFER_MAX_ITERATIONS", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resetViper()
			os.Setenv(tc.envKey, tc.envVal)
			defer os.Unsetenv(tc.envKey)

			if _, err := Load(); err == nil {
				t.Errorf("Load() accepted %s=%s", tc.envKey, tc.envVal)
			}
		})
	}
}
