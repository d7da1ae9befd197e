package engine_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/SrikanthGadde/ee658/engine"
)

// tinyNetlist: PI(1), PI(2), branch(3) off PI(1), AND gate(4) = PO
// over (2,3). Checkpoint faults: {1,2,3} x {0,1} = 6 faults.
const tinyNetlist = `
1 1 0 1 0
1 2 0 1 0
2 3 1 1
3 4 7 0 2 2 3
`

func newTestEngine(t *testing.T) (*engine.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.txt")
	require.NoError(t, os.WriteFile(path, []byte(tinyNetlist), 0o644))

	e := engine.New(engine.NewConfig(engine.WithTimeBudget(2*time.Second)), zerolog.Nop())
	require.NoError(t, e.Read(path))
	return e, "tiny"
}

func TestRead_PrintCircuit_Lev(t *testing.T) {
	e, name := newTestEngine(t)
	require.True(t, e.Loaded())
	require.Equal(t, name, e.CircuitName())

	var pc bytes.Buffer
	require.NoError(t, e.PrintCircuit(&pc))
	require.Contains(t, pc.String(), "4 AND")

	var lev bytes.Buffer
	require.NoError(t, e.Lev(&lev))
	out := lev.String()
	require.Contains(t, out, "#PI: 2")
	require.Contains(t, out, "#PO: 1")
	require.Contains(t, out, "Nodes: 4")
	require.Contains(t, out, "#Gates: 2")
}

func TestRead_UnknownPath(t *testing.T) {
	e := engine.New(engine.DefaultConfig(), zerolog.Nop())
	err := e.Read(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
	require.False(t, e.Loaded())
}

func TestCommandsRequireLoadedCircuit(t *testing.T) {
	e := engine.New(engine.DefaultConfig(), zerolog.Nop())
	require.ErrorIs(t, e.PrintCircuit(&bytes.Buffer{}), engine.ErrNoCircuitLoaded)
	require.ErrorIs(t, e.Lev(&bytes.Buffer{}), engine.ErrNoCircuitLoaded)
	require.ErrorIs(t, e.Rfl(&bytes.Buffer{}), engine.ErrNoCircuitLoaded)
}

func TestLogicsim(t *testing.T) {
	e, _ := newTestEngine(t)
	var out bytes.Buffer
	require.NoError(t, e.Logicsim(strings.NewReader("1,2\n1,1\n0,1\n1,0\n"), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Equal(t, []string{"4", "1", "0", "0"}, lines)
}

func TestRfl(t *testing.T) {
	e, _ := newTestEngine(t)
	var out bytes.Buffer
	require.NoError(t, e.Rfl(&out))
	require.Equal(t, "1@0\n1@1\n2@0\n2@1\n3@0\n3@1\n", out.String())
}

func TestPfs(t *testing.T) {
	e, _ := newTestEngine(t)
	var faults bytes.Buffer
	require.NoError(t, e.Rfl(&faults))

	patterns := "1,2\n1,1\n"
	var detected bytes.Buffer
	require.NoError(t, e.Pfs(strings.NewReader(patterns), strings.NewReader(faults.String()), &detected))
	require.NotEmpty(t, detected.String())
}

func TestDfs(t *testing.T) {
	e, _ := newTestEngine(t)
	var detected bytes.Buffer
	require.NoError(t, e.Dfs(strings.NewReader("1,2\n1,1\n"), &detected))
	require.NotEmpty(t, detected.String())
}

func TestRandomTestGeneration_Trail(t *testing.T) {
	e, _ := newTestEngine(t)
	patterns, reports, err := e.RandomTestGeneration(20, 4)
	require.NoError(t, err)
	require.Len(t, patterns, 20)
	require.Len(t, reports, 5)
	for i := 1; i < len(reports); i++ {
		require.GreaterOrEqual(t, reports[i].Coverage, reports[i-1].Coverage)
		require.Equal(t, reports[i-1].PatternsSoFar+4, reports[i].PatternsSoFar)
	}
	require.Greater(t, reports[len(reports)-1].Coverage, 0.0)
}

func TestAtpgDet_PODEM(t *testing.T) {
	e, _ := newTestEngine(t)
	patterns, rep, err := e.AtpgDet("podem")
	require.NoError(t, err)
	require.NotEmpty(t, patterns)
	require.Equal(t, "PODEM", rep.Algorithm)
	require.Equal(t, 100.0, rep.FaultCoverage)
}

func TestAtpgDet_DALG(t *testing.T) {
	e, _ := newTestEngine(t)
	_, rep, err := e.AtpgDet("dalg")
	require.NoError(t, err)
	require.Equal(t, "DALG", rep.Algorithm)
	require.Equal(t, 100.0, rep.FaultCoverage)
}

func TestAtpgDet_UnknownAlgorithm(t *testing.T) {
	e, _ := newTestEngine(t)
	_, _, err := e.AtpgDet("bogus")
	require.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
}

func TestAtpg_Hybrid(t *testing.T) {
	e, _ := newTestEngine(t)
	patterns, reports, rep, err := e.Atpg()
	require.NoError(t, err)
	require.NotEmpty(t, patterns)
	require.NotEmpty(t, reports)
	require.Equal(t, "HYBRID", rep.Algorithm)
	require.Equal(t, 100.0, rep.FaultCoverage)
}

func TestPodemAndDalg_SingleFault(t *testing.T) {
	e, _ := newTestEngine(t)

	res, err := e.Podem(4, 0)
	require.NoError(t, err)
	require.NotNil(t, res)

	res2, err := e.Dalg(4, 1)
	require.NoError(t, err)
	require.NotNil(t, res2)
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("word_width: 32\n"), 0o644))

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 32, cfg.WordWidth)
	require.Equal(t, engine.DefaultConfig().HybridGainThreshold, cfg.HybridGainThreshold)
}

func TestClassifyError_Taxonomy(t *testing.T) {
	ce := engine.ClassifyError(engine.ErrNoCircuitLoaded)
	require.Equal(t, engine.CategoryOrderError, ce.Category)
	require.ErrorIs(t, ce, engine.ErrNoCircuitLoaded)
}
