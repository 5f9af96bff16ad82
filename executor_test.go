package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ===== EXTRACT =====

func TestRunExtract(t *testing.T) {
	dir := t.TempDir()
	path := writeMakefile(t, dir, testMakefile)

	e, out := testEnv(t, defaultConfig())
	if err := runExtract(e, path, "", "", false); err != nil {
		t.Fatalf("runExtract() unexpected error: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if len(got) != 16 {
		t.Errorf("output has %d fields, want 16", len(got))
	}
	checks := map[string]interface{}{
		"target":    "blinky",
		"cpu":       "-mcpu=cortex-m4",
		"floatAbi":  "-mfloat-abi=hard",
		"targetMCU": "stm32f4xx",
		"ldscript":  "STM32F407VGTx_FLASH.ld",
		"mcu":       "",
	}
	for field, want := range checks {
		if got[field] != want {
			t.Errorf("%s = %v, want %v", field, got[field], want)
		}
	}
	if sources, _ := got["cSources"].([]interface{}); len(sources) != 3 {
		t.Errorf("cSources = %v, want 3 entries", got["cSources"])
	}
}

func TestRunExtractFields(t *testing.T) {
	path := writeMakefile(t, t.TempDir(), testMakefile)

	tests := []struct {
		name        string
		fields      string
		wantKeys    []string
		expectError bool
	}{
		{"Single field", "cpu", []string{"cpu"}, false},
		{"Schema order kept", "cDefs, target", []string{"target", "cDefs"}, false},
		{"Blank entries ignored", ",cpu,,", []string{"cpu"}, false},
		{"Unknown field", "cpu,bogus", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, out := testEnv(t, defaultConfig())
			err := runExtract(e, path, formatJSON, tt.fields, false)
			if tt.expectError {
				if err == nil {
					t.Fatal("runExtract() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("runExtract() unexpected error: %v", err)
			}

			var keys []string
			dec := json.NewDecoder(strings.NewReader(out.String()))
			if _, err := dec.Token(); err != nil {
				t.Fatalf("output is not a JSON object: %v", err)
			}
			for dec.More() {
				tok, _ := dec.Token()
				keys = append(keys, tok.(string))
				var skip json.RawMessage
				if err := dec.Decode(&skip); err != nil {
					t.Fatalf("decode value: %v", err)
				}
			}
			if diff := cmp.Diff(tt.wantKeys, keys); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunExtractFormats(t *testing.T) {
	path := writeMakefile(t, t.TempDir(), testMakefile)

	tests := []struct {
		name        string
		cfgFormat   string
		format      string
		wantPrefix  string
		expectError bool
	}{
		{"Config default", "yaml", "", "target: blinky", false},
		{"Flag overrides config", "yaml", "json", "{", false},
		{"HCL", "json", "hcl", "target", false},
		{"Unsupported", "json", "xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Format = tt.cfgFormat
			e, out := testEnv(t, cfg)

			err := runExtract(e, path, tt.format, "", false)
			if tt.expectError {
				if err == nil {
					t.Fatal("runExtract() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("runExtract() unexpected error: %v", err)
			}
			if !strings.HasPrefix(out.String(), tt.wantPrefix) {
				t.Errorf("output starts with %q, want %q", firstLine(out.String()), tt.wantPrefix)
			}
		})
	}
}

func TestRunExtractStrict(t *testing.T) {
	path := writeMakefile(t, t.TempDir(), "C_SOURCES = \\\nSrc/main.c \\\n../Src/other.c \\")

	e, _ := testEnv(t, defaultConfig())
	if err := runExtract(e, path, formatJSON, "", false); err != nil {
		t.Fatalf("lenient runExtract() unexpected error: %v", err)
	}

	e, _ = testEnv(t, defaultConfig())
	err := runExtract(e, path, formatJSON, "", true)
	if err == nil {
		t.Fatal("strict runExtract() expected error but got none")
	}
	if exitCode(err) != 4 {
		t.Errorf("exitCode() = %d, want 4", exitCode(err))
	}

	cfg := defaultConfig()
	cfg.Strict = true
	e, _ = testEnv(t, cfg)
	if err := runExtract(e, path, formatJSON, "", false); exitCode(err) != 4 {
		t.Errorf("strict from config: exitCode() = %d, want 4", exitCode(err))
	}
}

func TestRunExtractMissingSource(t *testing.T) {
	e, out := testEnv(t, defaultConfig())
	err := runExtract(e, t.TempDir(), formatJSON, "", false)
	if exitCode(err) != 2 {
		t.Errorf("exitCode() = %d, want 2 (err %v)", exitCode(err), err)
	}
	if out.Len() != 0 {
		t.Errorf("output written on failure: %q", out.String())
	}
}

// ===== GET / TARGET / FIELDS =====

func TestRunGet(t *testing.T) {
	path := writeMakefile(t, t.TempDir(), testMakefile)

	tests := []struct {
		name        string
		field       string
		want        string
		expectError bool
	}{
		{"Scalar", "cpu", "-mcpu=cortex-m4\n", false},
		{"List", "cDefs", "-DUSE_HAL_DRIVER\n-DSTM32F407xx\n", false},
		{"Derived", "targetMCU", "stm32f4xx\n", false},
		{"Absent default scalar", "mcu", "\n", false},
		{"Absent default list", "asIncludes", "", false},
		{"Field outside the schema", "opt", "-Og\n", false},
		{"Missing field outside the schema", "buildDir", "", true},
		{"Empty field name", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, out := testEnv(t, defaultConfig())
			err := runGet(e, tt.field, path)
			if tt.expectError {
				if err == nil {
					t.Fatal("runGet() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("runGet() unexpected error: %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("runGet(%q) = %q, want %q", tt.field, out.String(), tt.want)
			}
		})
	}
}

func TestRunTarget(t *testing.T) {
	dir := t.TempDir()
	path := writeMakefile(t, dir, testMakefile)

	e, out := testEnv(t, defaultConfig())
	if err := runTarget(e, path); err != nil {
		t.Fatalf("runTarget() unexpected error: %v", err)
	}
	if out.String() != "stm32f4xx\n" {
		t.Errorf("runTarget() = %q, want stm32f4xx", out.String())
	}

	other := writeMakefile(t, t.TempDir(), "C_SOURCES = \\\nSrc/main.c\n")
	e, _ = testEnv(t, defaultConfig())
	if err := runTarget(e, other); err == nil {
		t.Error("runTarget() without msp file expected error but got none")
	}
}

func TestRunFields(t *testing.T) {
	tests := []struct {
		format      string
		want        string
		expectError bool
	}{
		{"", "Available fields:", false},
		{"table", "Available fields:", false},
		{"json", `"fields"`, false},
		{"yaml", "fields:", false},
		{"hcl", "", true},
	}

	for _, tt := range tests {
		t.Run("format="+tt.format, func(t *testing.T) {
			e, out := testEnv(t, defaultConfig())
			err := runFields(e, tt.format)
			if tt.expectError {
				if err == nil {
					t.Fatal("runFields() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("runFields() unexpected error: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("runFields(%q) output missing %q", tt.format, tt.want)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := defaultConfig()
	cfg.Makefile = "from/config"
	e, _ := testEnv(t, cfg)

	if got := e.location([]string{"a", "b"}, 1); got != "b" {
		t.Errorf("location(args, 1) = %q, want b", got)
	}
	if got := e.location([]string{"a"}, 1); got != "from/config" {
		t.Errorf("location() without argument = %q, want config value", got)
	}
	if got := e.location([]string{""}, 0); got != "from/config" {
		t.Errorf("location() with empty argument = %q, want config value", got)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
