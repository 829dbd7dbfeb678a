package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	defer Reset()

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Delimiter != DefaultDelimiter {
		t.Errorf("expected default delimiter %q, got %q", DefaultDelimiter, cfg.Delimiter)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected default output %q, got %q", DefaultOutput, cfg.Output)
	}
	if cfg.NoHeader || cfg.Verbose {
		t.Errorf("expected booleans to default to false: %+v", cfg)
	}
	if GetConfigFileUsed() != "" {
		t.Errorf("no config file should be found in an empty dir, got %q", GetConfigFileUsed())
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tablefile.yaml")
	content := "delimiter: \";\"\nno_header: true\nout_dir: converted\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Chdir(dir)
	defer Reset()

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Delimiter != ";" {
		t.Errorf("expected delimiter from file, got %q", cfg.Delimiter)
	}
	if !cfg.NoHeader {
		t.Error("expected no_header from file")
	}
	if cfg.OutDir != "converted" {
		t.Errorf("expected out_dir from file, got %q", cfg.OutDir)
	}
	if GetConfigFileUsed() == "" {
		t.Error("expected config file to be tracked")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "tablefile.yml")
	if err := os.WriteFile(cfgPath, []byte("delimiter: \";\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("TABLEFILE_DELIMITER", "|")
	defer Reset()

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Delimiter != "|" {
		t.Errorf("expected env var to win over config file, got %q", cfg.Delimiter)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TABLEFILE_DELIMITER", "|")
	defer Reset()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("delimiter", DefaultDelimiter, "")
	flags.Bool("no-header", false, "")
	if err := flags.Parse([]string{"--delimiter", "\t", "--no-header"}); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Delimiter != "\t" {
		t.Errorf("expected flag to win, got %q", cfg.Delimiter)
	}
	if !cfg.NoHeader {
		t.Error("expected no-header flag to map to no_header")
	}
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TABLEFILE_OUTPUT", "json")
	defer Reset()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", DefaultOutput, "")
	if err := flags.Parse(nil); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output != "json" {
		t.Errorf("unset flag must not mask the env var, got %q", cfg.Output)
	}
}

func TestConfig_CSVOptions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		want    rune
	}{
		{name: "default comma", cfg: Config{Delimiter: ","}, want: ','},
		{name: "empty means default", cfg: Config{}, want: 0},
		{name: "tab", cfg: Config{Delimiter: "\t"}, want: '\t'},
		{name: "multi-char", cfg: Config{Delimiter: ",,"}, wantErr: true},
		{name: "quote", cfg: Config{Delimiter: `"`}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.CSVOptions()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.Delimiter != tt.want {
				t.Errorf("expected delimiter %q, got %q", tt.want, opts.Delimiter)
			}
		})
	}
}
