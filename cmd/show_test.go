package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/ftype/internal/app"
)

func TestToShowResult(t *testing.T) {
	res := app.Resolution{
		Invocation: app.NewInvocation("doc.foo"),
		Extension:  ".foo",
		Template:   "runner %* %q",
		Err:        &app.UnsupportedPlaceholderError{Designator: 'q'},
	}
	out := toShowResult(res)
	assert.Equal(t, "doc.foo", out.Path)
	assert.Equal(t, ".foo", out.Extension)
	assert.Equal(t, "runner %* %q", out.Template)
	assert.Contains(t, out.Error, "%q")
	assert.Empty(t, out.Program)

	res = app.Resolution{
		Invocation: app.NewInvocation("doc.foo", "a"),
		Extension:  ".foo",
		Template:   "runner %*",
		Command: &app.ResolvedCommand{
			Program:   "runner",
			Args:      []string{"a"},
			Extension: ".foo",
			Template:  "runner %*",
		},
	}
	out = toShowResult(res)
	assert.Equal(t, "runner", out.Program)
	assert.Equal(t, []string{"a"}, out.Args)
	assert.Equal(t, "runner %*", out.Template)
	assert.Empty(t, out.Error)
}

// changingStore swaps its template after every completed fill.
type changingStore struct {
	*app.TableStore
	next string
}

func (c *changingStore) QueryFill(key string, buf []uint16) (int, error) {
	n, err := c.TableStore.QueryFill(key, buf)
	c.TableStore.Set(key, c.next)
	return n, err
}

func TestShowReportsTemplateThatFailed(t *testing.T) {
	store := &changingStore{
		TableStore: app.NewTableStore(map[string]string{".foo": "runner %q"}),
		next:       "other %1",
	}
	resolver := app.NewResolver(store, nil)

	results, err := resolver.ResolveAll(context.Background(), []app.Invocation{app.NewInvocation("doc.foo")}, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)

	out := toShowResult(results[0])
	assert.Equal(t, "runner %q", out.Template)
	assert.Contains(t, out.Error, "%q")
}

func TestWriteShow(t *testing.T) {
	results := []showResult{
		{Path: "doc.foo", Extension: ".foo", Template: "runner %*", Program: "runner", Args: []string{"x y"}},
		{Path: "noext", Error: "program path has no extension"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeShowJSON(&buf, results))
	var decoded []showResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, results, decoded)

	buf.Reset()
	writeShowText(&buf, results)
	text := buf.String()
	assert.Contains(t, text, "doc.foo")
	assert.Contains(t, text, "runner %*")
	assert.Contains(t, text, "runner 'x y'")
	assert.Contains(t, text, "program path has no extension")
}
