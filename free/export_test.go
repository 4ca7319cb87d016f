// SPDX-License-Identifier: MIT
package free_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/semiring/free"
)

func TestString_Infix(t *testing.T) {
	v := vars("x", "y")
	f := free.NewFactory()
	x, y := f.Element(v[0]), f.Element(v[1])

	require.Equal(t, "∅", f.String(free.Empty))
	require.Equal(t, "ε", f.String(free.Epsilon))
	require.Equal(t, "((v1 + v2) · (v1)*)", f.String(f.Mul(f.Add(x, y), f.Star(x))))
	require.Equal(t, "<invalid 99>", f.String(99))
}

func TestWriteDot(t *testing.T) {
	v := vars("x", "y")
	f := free.NewFactory()
	x, y := f.Element(v[0]), f.Element(v[1])
	sum := f.Add(x, y)
	other := f.Star(y)

	var buf bytes.Buffer
	require.NoError(t, f.WriteDot(&buf, sum))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, `digraph "free_`+f.ID().String()+`" {`), out)
	require.Contains(t, out, `[label="+"]`)
	require.Contains(t, out, `[label="v1"]`)
	require.Contains(t, out, `[label="l"]`)
	require.NotContains(t, out, `[label="*"]`, "star(y) is not reachable from the root")
	require.True(t, strings.HasSuffix(out, "}\n"))

	buf.Reset()
	require.NoError(t, f.WriteDot(&buf))
	require.Contains(t, buf.String(), `[label="*"]`)
	require.Contains(t, buf.String(), `[label="∅"]`)
	_ = other
}

func TestStats_String(t *testing.T) {
	v := vars("x")
	f := free.NewFactory()
	f.Star(f.Element(v[0]))

	s := f.Stats().String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	require.Equal(t, "factory "+f.ID().String(), lines[0])
	require.Len(t, lines, 10)

	// Values start at the same display column on every row.
	col := -1
	for _, l := range lines[1:] {
		i := strings.LastIndex(l, "  ")
		w := runewidth.StringWidth(l[:i])
		if col < 0 {
			col = w
		}
		require.Equal(t, col, w, "row %q", l)
	}
	require.Contains(t, s, "live")
}
