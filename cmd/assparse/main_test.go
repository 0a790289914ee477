package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"assparse/internal/parser"
	"assparse/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	cacheDir   string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "xdg-cache"))

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		cacheDir:   filepath.Join(base, "cache"),
	}
	writeTestConfig(t, env.configPath, env.cacheDir, filepath.Join(base, "logs"))
	return env
}

func writeTestConfig(t *testing.T, path, cacheDir, logDir string) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\ncache_dir = %q\nlog_dir = %q\n\n[api]\nbind = \"127.0.0.1:0\"\n\n[logging]\nlevel = \"error\"\n",
		cacheDir, logDir,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestParseCommandFormats(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "", "parse", "--format", "json", `{\b1}Hi`)
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	var decoded struct {
		Rule  string `json:"rule"`
		Value []struct {
			Kind string `json:"kind"`
		} `json:"value"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if decoded.Rule != "dialogueParts" || len(decoded.Value) != 2 || decoded.Value[0].Kind != "bold" {
		t.Fatalf("unexpected output %+v", decoded)
	}

	out, _, err = runCLI(t, env, "", "parse", "-f", "yaml", `{\b1}Hi`)
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	requireContains(t, out, "kind: bold")
	requireContains(t, out, "value: Hi")

	out, _, err = runCLI(t, env, "", "parse", `{\b1}Hi`)
	if err != nil {
		t.Fatalf("parse table: %v", err)
	}
	requireContains(t, out, "Kind")
	requireContains(t, out, "bold")
	requireContains(t, out, `{"value":"Hi"}`)
}

func TestParseCommandEncodesOverlongNumbers(t *testing.T) {
	env := setupCLITestEnv(t)
	line := `{\bord` + strings.Repeat("9", 400) + `}x`
	for _, format := range []string{"json", "yaml"} {
		out, _, err := runCLI(t, env, "", "parse", "--format", format, line)
		if err != nil {
			t.Fatalf("parse %s: %v", format, err)
		}
		requireContains(t, out, "1.7976931348623157e+308")
	}
}

func TestParseCommandRulesAndStdin(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "&H0000FF&\n", "parse", "--rule", "color", "-")
	if err != nil {
		t.Fatalf("parse color: %v", err)
	}
	requireContains(t, out, "rgba(255, 0, 0, 1)")

	_, _, err = runCLI(t, env, "", "parse", "--rule", "bogus", "x")
	if err == nil || !strings.Contains(err.Error(), "unknown rule") {
		t.Fatalf("expected unknown rule error, got %v", err)
	}

	_, _, err = runCLI(t, env, "", "parse", `{\b1`)
	if !errors.Is(err, parser.ErrParseFailed) {
		t.Fatalf("expected parse failure, got %v", err)
	}

	_, _, err = runCLI(t, env, "", "parse", "--rule", "decimal", "--karaoke", "1")
	if err == nil {
		t.Fatal("expected --karaoke to be rejected for non-dialogue rules")
	}
}

func TestParseCommandTiming(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, env, "", "parse", "--duration", "4", "--karaoke", `{\move(0,0,1,1)\k50}la{\kf150}li`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	requireContains(t, out, `"t2":4`)
	requireContains(t, out, "Karaoke")
	requireContains(t, out, "sweepingColorKaraoke")
	requireContains(t, out, "2.00")
}

func TestScriptCommandUsesCache(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteScript(t, env.baseDir, "sample.ass", `{\i1}one`, `{\b1`, "three")

	type result struct {
		Lines []struct {
			Line  int    `json:"line"`
			Error string `json:"error"`
			Parts []any  `json:"parts"`
		} `json:"lines"`
		Failed    int `json:"failed"`
		CacheHits int `json:"cacheHits"`
	}

	var runs []result
	for range 2 {
		out, _, err := runCLI(t, env, "", "script", "--format", "json", path)
		if err != nil {
			t.Fatalf("script: %v", err)
		}
		var r result
		if err := json.Unmarshal([]byte(out), &r); err != nil {
			t.Fatalf("decode: %v\n%s", err, out)
		}
		runs = append(runs, r)
	}

	first := runs[0]
	if len(first.Lines) != 3 || first.Failed != 1 {
		t.Fatalf("unexpected first run %+v", first)
	}
	if first.Lines[1].Error == "" || len(first.Lines[0].Parts) != 2 {
		t.Fatalf("unexpected lines %+v", first.Lines)
	}
	if first.CacheHits != 0 || runs[1].CacheHits != 2 {
		t.Fatalf("cache hits = %d then %d, want 0 then 2", first.CacheHits, runs[1].CacheHits)
	}

	out, _, err := runCLI(t, env, "", "script", "--no-cache", path)
	if err != nil {
		t.Fatalf("script table: %v", err)
	}
	requireContains(t, out, "3 lines, 1 failed, 0 skipped, 0 from cache")

	out, _, err = runCLI(t, env, "", "cache", "stats", "--format", "json")
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, `"entries": 2`)

	out, _, err = runCLI(t, env, "", "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Removed 2 cached results")
}

func TestRulesCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, env, "", "rules", "--format", "json")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	var rules []ruleOutput
	if err := json.Unmarshal([]byte(out), &rules); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rules) != len(parser.Rules()) {
		t.Fatalf("got %d rules, want %d", len(rules), len(parser.Rules()))
	}
	groups := map[string]string{}
	for _, r := range rules {
		groups[r.Name] = r.Group
	}
	if groups["dialogueParts"] != "entry" || groups["tag_bord"] != "tag" || groups["color"] != "primitive" {
		t.Fatalf("unexpected groups %v", groups)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "", "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.cacheDir)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, env, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, env, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
}

func TestEnvFileFeedsConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("ASSPARSE_LOG_LEVEL", "")
	if err := os.Unsetenv("ASSPARSE_LOG_LEVEL"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	envFile := filepath.Join(env.baseDir, "test.env")
	if err := os.WriteFile(envFile, []byte("ASSPARSE_LOG_LEVEL=verbose\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	_, _, err := runCLI(t, env, "", "--env-file", envFile, "config", "validate")
	if err == nil || !strings.Contains(err.Error(), "verbose") {
		t.Fatalf("expected invalid level from env file, got %v", err)
	}
}
