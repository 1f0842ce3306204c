package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindExtension(t *testing.T) {
	tests := []struct {
		name    string
		program string
		want    string
		wantErr error
	}{
		{name: "simple", program: "notes.txt", want: ".txt"},
		{name: "dotted directory", program: `C:\a.b\c.txt`, want: ".txt"},
		{name: "multiple dots", program: "archive.tar.gz", want: ".gz"},
		{name: "trailing dot", program: "file.", want: "."},
		{name: "dot in directory only", program: "/opt/app.d/run", want: ".d/run"},
		{name: "hidden file", program: ".bashrc", want: ".bashrc"},
		{name: "uppercase kept", program: "SCRIPT.PY", want: ".PY"},
		{name: "no dot", program: `C:\bin\tool`, wantErr: ErrNoExtension},
		{name: "empty", program: "", wantErr: ErrNoExtension},
		{name: "NUL byte", program: "a\x00.txt", wantErr: ErrInvalidInput},
		{name: "invalid UTF-8", program: "a\xff.txt", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindExtension(tt.program)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
