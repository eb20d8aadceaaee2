package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	if got := String(); !strings.Contains(got, "version: "+Version) || !strings.Contains(got, Commit) {
		t.Errorf("String() = %q", got)
	}
	if !strings.HasPrefix(Template(), "{{.Name}} version ") {
		t.Errorf("Template() = %q", Template())
	}
	if ServerHeader() != "drawshop/dev" {
		t.Errorf("ServerHeader() = %q, want drawshop/dev", ServerHeader())
	}
}
