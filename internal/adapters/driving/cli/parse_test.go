package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/levels"
	"github.com/james-keevy/acqf-eqf-comparator/internal/normalisers/csv"
)

func TestParseCmd_Use(t *testing.T) {
	assert.Equal(t, "parse [file]", parseCmd.Use)
}

func TestParseCmd_HasFlags(t *testing.T) {
	assert.NotNil(t, parseCmd.Flags().Lookup("json"))
	level := parseCmd.Flags().Lookup("level")
	require.NotNil(t, level)
	assert.Equal(t, "l", level.Shorthand)
}

func TestParseCmd_RequiresExactlyOneArg(t *testing.T) {
	_, _, err := executeCommand(t, nil, "parse")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestParseCmd_PrintsTable(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "acqf.csv", primaryCSV)

	out, _, err := executeCommand(t, nil, "parse", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Level 1")
	assert.Contains(t, out, "Knowledge:")
	assert.Contains(t, out, "basic facts\n    simple ideas")
	assert.Contains(t, out, "Level 2")
	assert.Contains(t, out, "apply methods")
	assert.Less(t, strings.Index(out, "Level 1"), strings.Index(out, "Level 2"))
}

func TestParseCmd_FiltersLevel(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "acqf.csv", primaryCSV)

	out, _, err := executeCommand(t, nil, "parse", path, "--level", "Two")

	require.NoError(t, err)
	assert.Contains(t, out, "Level 2")
	assert.NotContains(t, out, "Level 1")
}

func TestParseCmd_MissingLevel(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "acqf.csv", primaryCSV)

	_, _, err := executeCommand(t, nil, "parse", path, "--level", "9")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParseCmd_JSON(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "acqf.csv", primaryCSV)

	out, _, err := executeCommand(t, nil, "parse", path, "--json", "--level", "1")
	require.NoError(t, err)

	var output struct {
		Table struct {
			Source string `json:"source"`
			Levels []struct {
				Level   string `json:"level"`
				Domains []struct {
					Domain     string `json:"domain"`
					Descriptor string `json:"descriptor"`
				} `json:"domains"`
			} `json:"levels"`
		} `json:"table"`
		Records  int              `json:"records"`
		Warnings []domain.Warning `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Equal(t, "acqf.csv", output.Table.Source)
	assert.Equal(t, 3, output.Records)
	assert.Empty(t, output.Warnings)
	require.Len(t, output.Table.Levels, 1)
	assert.Equal(t, "Level 1", output.Table.Levels[0].Level)
	assert.Equal(t, "basic facts\nsimple ideas", output.Table.Levels[0].Domains[0].Descriptor)
}

func TestParseCmd_EmptyFileWarns(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "empty.csv", "Level,Domain,Descriptor\n")

	out, errOut, err := executeCommand(t, nil, "parse", path)

	require.NoError(t, err)
	assert.Contains(t, out, "No level descriptors found.")
	assert.Contains(t, errOut, "empty_result")
}

func TestParseCmd_MalformedRowsWarn(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "rows.csv", primaryCSV+"Level 3,Skills\n")

	out, errOut, err := executeCommand(t, nil, "parse", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Level 2")
	assert.Contains(t, errOut, "malformed_row (row 5)")
}

func TestParseCmd_SchemaError(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "bad.csv", "Level,Domain\nLevel 1,Knowledge\n")

	_, _, err := executeCommand(t, nil, "parse", path)

	assert.ErrorIs(t, err, domain.ErrSchema)
	assert.Contains(t, err.Error(), "Descriptor")
}

func TestParseCmd_UnsupportedFormat(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "levels.docx", "x")

	_, _, err := executeCommand(t, nil, "parse", path)

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestParseCmd_NoServices(t *testing.T) {
	SetServices(nil)
	path := writeTestFile(t, "acqf.csv", primaryCSV)

	_, _, err := executeCommand(t, nil, "parse", path)

	assert.ErrorIs(t, err, errPipelineNotConfigured)
}

func TestLevelsCmd_PrintsSortedLevels(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "levels.csv", "Level,Domain,Descriptor\nLevel 10,Skills,x\nLevel 2,Skills,y\nLevel Three,Skills,z\n")

	out, _, err := executeCommand(t, nil, "levels", path)

	require.NoError(t, err)
	assert.Equal(t, "Level 2\nLevel 3\nLevel 10\n", out)
}

func TestExportCmd_Stdout(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "acqf.csv", primaryCSV)

	out, _, err := executeCommand(t, nil, "export", path)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Level,Domain,Descriptor\n"))
	assert.Contains(t, out, "Level 2,Skills,apply methods\n")
	assert.Contains(t, out, "\"basic facts\nsimple ideas\"")
}

func TestExportCmd_OutputFileRoundTrips(t *testing.T) {
	setupTestServices(t)
	path := writeTestFile(t, "acqf.csv", primaryCSV)
	outPath := filepath.Join(t.TempDir(), "out.csv")

	out, _, err := executeCommand(t, nil, "export", path, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 levels")

	original, _, err := executeCommand(t, nil, "export", path)
	require.NoError(t, err)
	exported, _, err := executeCommand(t, nil, "export", outPath)
	require.NoError(t, err)
	assert.Equal(t, original, exported)

	loaded, err := csv.Load([]byte(exported))
	require.NoError(t, err)
	assert.Len(t, loaded.Records, 2)
}

func TestParseCmd_LevelUsesConfiguredOrdinals(t *testing.T) {
	setupTestServices(t)
	ordinals := levels.NewNormalizer([]string{"Eins", "Zwei"})
	SetServices(&Services{Pipeline: pipelineService, Levels: ordinals})

	path := writeTestFile(t, "dqr.csv", primaryCSV)
	out, _, err := executeCommand(t, nil, "parse", path, "--level", "Stufe Zwei")

	require.NoError(t, err)
	assert.Contains(t, out, "Level 2")
	assert.Contains(t, out, "apply methods")
	assert.NotContains(t, out, "basic facts")
}

func TestParseCmd_LevelDefaultsWithoutNormalizer(t *testing.T) {
	setupTestServices(t)

	path := writeTestFile(t, "acqf.csv", primaryCSV)
	out, _, err := executeCommand(t, nil, "parse", path, "--level", "Level One")

	require.NoError(t, err)
	assert.Contains(t, out, "basic facts")
	assert.NotContains(t, out, "apply methods")
}
