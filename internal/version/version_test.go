package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{name: "adds v prefix", version: "0.1.0", commit: "unknown", want: "v0.1.0"},
		{name: "keeps single v prefix", version: "v0.2.0", commit: "unknown", want: "v0.2.0"},
		{name: "with commit", version: "0.1.0", commit: "abc1234", want: "v0.1.0 (abc1234)"},
		{name: "dirty build", version: "v0.1.0+dirty", commit: "a0e2dac", want: "v0.1.0+dirty (a0e2dac)"},
		{name: "empty commit", version: "1.0.0", commit: "", want: "v1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origVersion, origCommit := Version, Commit
			defer func() {
				Version, Commit = origVersion, origCommit
			}()

			Version = tt.version
			Commit = tt.commit
			assert.Equal(t, tt.want, String())
		})
	}
}
