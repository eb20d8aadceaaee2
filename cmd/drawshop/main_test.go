package main

import (
	"fmt"
	"testing"

	"github.com/matzehuels/drawshop/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeNotFound, "missing"), exitNotFound},
		{errors.New(errors.ErrCodeInvalidStyle, "bad style"), exitUsage},
		{errors.New(errors.ErrCodeIndexOutOfRange, "no shape"), exitUsage},
		{errors.New(errors.ErrCodeCorrupt, "garbage"), exitError},
		{fmt.Errorf("plain"), exitError},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
