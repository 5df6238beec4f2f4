package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/james-keevy/acqf-eqf-comparator/internal/adapters/driven/config/memory"
	"github.com/james-keevy/acqf-eqf-comparator/internal/aggregate"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/domain"
	"github.com/james-keevy/acqf-eqf-comparator/internal/core/services"
	"github.com/james-keevy/acqf-eqf-comparator/internal/levels"
	"github.com/james-keevy/acqf-eqf-comparator/internal/normalisers"
	csvnorm "github.com/james-keevy/acqf-eqf-comparator/internal/normalisers/csv"
)

const primaryCSV = `Level,Domain,Descriptor
Level 1,Knowledge,basic facts
1,knowledge,simple ideas
Level 2,Skills,apply methods
`

const secondaryCSV = `Level,Domain,Descriptor
Level One,Knowledge,general knowledge
Level 2,Skills,cognitive skills
`

// setupTestServices wires real services over an in-memory config store.
func setupTestServices(t *testing.T) {
	t.Helper()

	settings := services.NewSettingsService(memory.NewConfigStore())
	pipeline := services.NewPipelineService(normalisers.NewRegistry(csvnorm.New()), aggregate.New())
	comparison := services.NewComparisonService(
		pipeline,
		levels.NewNormalizer(domain.DefaultDialect().OrdinalWords),
		settings,
	)

	SetServices(&Services{
		Pipeline:   pipeline,
		Comparison: comparison,
		Settings:   settings,
	})
	t.Cleanup(func() { SetServices(nil) })
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// executeCommand runs the root command and returns stdout and stderr.
// Flags are reset afterwards since cobra keeps parsed values between runs.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
