package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteScript writes a minimal subtitle script under dir containing one
// Dialogue line per text, each one second long, and returns its path.
func WriteScript(t testing.TB, dir, name string, texts ...string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("[Script Info]\nScriptType: v4.00+\n\n[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for i, text := range texts {
		b.WriteString("Dialogue: 0,0:00:")
		b.WriteString(twoDigits(i))
		b.WriteString(".00,0:00:")
		b.WriteString(twoDigits(i + 1))
		b.WriteString(".00,Default,,0,0,0,,")
		b.WriteString(text)
		b.WriteByte('\n')
	}

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func twoDigits(n int) string {
	n %= 60
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
