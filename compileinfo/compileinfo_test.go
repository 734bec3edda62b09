package compileinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	c := CompileInfo{Program: "kinshipheatmap", Package: "github.com/carbocation/kinshipmap/cmd/kinshipheatmap", Version: "(devel)", GoVersion: "go1.18", Commit: "abc123", Modified: true}

	s := c.String()
	if !strings.HasPrefix(s, "kinshipheatmap (github.com/carbocation/kinshipmap/cmd/kinshipheatmap) was built with go1.18 at commit abc123") {
		t.Errorf("Unexpected description %q", s)
	}
	if !strings.Contains(s, "modified") {
		t.Errorf("Expected the modified note in %q", s)
	}

	c.Version = "v1.2.0"
	if s := c.String(); !strings.Contains(s, "version v1.2.0") {
		t.Errorf("Expected the version in %q", s)
	}
}
