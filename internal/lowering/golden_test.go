package lowering

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/hornlang/hornc/internal/astyaml"
	"github.com/hornlang/hornc/internal/ir"
)

// Golden fixtures under testdata/*.txtar each bundle a program.yaml and
// either a want.txt (expected item counts) or a want.error (a substring
// the returned error must contain). This is the same idea as cue-lang-cue's
// script_test.go-style txtar fixtures, scaled down to this package's needs.
func TestGolden(t *testing.T) {
	archives, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, archives, "expected at least one golden fixture")

	for _, path := range archives {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			arc := txtar.Parse(readFile(t, path))
			programData := fileData(t, arc, "program.yaml")

			program, err := astyaml.LoadProgram(programData)
			require.NoError(t, err, "astyaml.LoadProgram")

			out, lowerErr := Lower(program, ir.SolverChoice{Name: "slg", MaxSize: 16})

			if wantErr, ok := tryFileData(arc, "want.error"); ok {
				require.Error(t, lowerErr)
				require.Contains(t, lowerErr.Error(), strings.TrimSpace(string(wantErr)))
				return
			}

			require.NoError(t, lowerErr)
			wantCounts := parseCounts(t, fileData(t, arc, "want.txt"))
			require.Equal(t, wantCounts["structs"], len(out.StructData), "structs")
			require.Equal(t, wantCounts["traits"], len(out.TraitData), "traits")
			require.Equal(t, wantCounts["impls"], len(out.ImplData), "impls")
			require.Equal(t, wantCounts["clauses"], len(out.CustomClauses), "clauses")
		})
	}
}

func parseCounts(t *testing.T, data []byte) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		require.True(t, ok, "malformed want.txt line %q", line)
		n, err := strconv.Atoi(strings.TrimSpace(v))
		require.NoError(t, err, "malformed want.txt count %q", line)
		out[strings.TrimSpace(k)] = n
	}
	return out
}

func fileData(t *testing.T, arc *txtar.Archive, name string) []byte {
	t.Helper()
	data, ok := tryFileData(arc, name)
	require.True(t, ok, "fixture missing file %q", name)
	return data
}

func tryFileData(arc *txtar.Archive, name string) ([]byte, bool) {
	for _, f := range arc.Files {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
