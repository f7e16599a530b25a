package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		key := key
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, v) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("GOCALC_ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("GOCALC_CONFIG", "")
	t.Setenv("GOCALC_STRICT", "")
	t.Setenv("GOCALC_PROMPT", "")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Error(diff)
	}

	path := writeFile(t, dir, "calc.yaml", "strict: true\npostfix: true\nprompt: \"= \"\n")
	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &config{Strict: true, Postfix: true, Prompt: "= "}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Error(diff)
	}
}

func TestLoadConfigEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("GOCALC_CONFIG", "")
	// godotenv.Load leaves variables that are already set alone.
	unsetenv(t, "GOCALC_STRICT", "GOCALC_PROMPT")
	writeFile(t, dir, ".gocalc.yaml", "strict: true\n")
	t.Setenv("GOCALC_ENV_FILE", writeFile(t, dir, "test.env", "GOCALC_STRICT=false\nGOCALC_PROMPT=>>\n"))

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	want := &config{Strict: false, Prompt: ">>"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Error(diff)
	}
}

func TestLoadConfigBadStrict(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("GOCALC_ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("GOCALC_CONFIG", "")
	t.Setenv("GOCALC_STRICT", "maybe")

	if _, err := loadConfig(""); err == nil {
		t.Error("want error for GOCALC_STRICT=maybe")
	}
}
