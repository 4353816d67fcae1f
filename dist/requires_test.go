package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenworks/visgen/dist"
	"github.com/lumenworks/visgen/errors"
)

func TestCheckRequires(t *testing.T) {
	tests := []struct {
		name        string
		requires    string
		toolVersion string
		wantErr     bool
	}{
		{"no constraint", "", "0.0.1", false},
		{"dev build skips", ">= 2.0", "dev", false},
		{"empty version skips", ">= 2.0", "", false},
		{"satisfied", ">= 1.0", "1.4.0", false},
		{"satisfied range", ">= 1.0, < 2.0", "1.9.9", false},
		{"violated", ">= 2.0", "1.4.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := dist.Default()
			d.Requires = tt.requires
			err := d.CheckRequires(tt.toolVersion)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrIncompatibleVersion))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckRequires_BadToolVersion(t *testing.T) {
	d := dist.Default()
	d.Requires = ">= 1.0"
	err := d.CheckRequires("not-a-version")
	require.Error(t, err)
	assert.False(t, errors.Is(err, errors.ErrIncompatibleVersion),
		"an unparseable version is its own failure, not an incompatibility")
}
