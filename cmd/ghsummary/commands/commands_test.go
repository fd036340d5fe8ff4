package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	foundation "git.home.luguber.info/inful/ghsummary/internal/foundation/errors"
	"git.home.luguber.info/inful/ghsummary/pkg/summary"
)

const reportDoc = `elements:
  - heading: Test Results
  - code: {code: 'console.log("hi")', language: js}
  - table:
      - [File, Status]
      - [foo.js, Pass]
  - link: {label: Report, url: "https://x/y"}
`

const reportMarkdown = "# Test Results\n" +
	"```js\nconsole.log(\"hi\")\n```\n" +
	"| File | Status |\n| --- | --- |\n| foo.js | Pass |\n" +
	"\n" +
	"[Report](https://x/y)\n"

type result struct {
	stdout string
	stderr string
	exit   int
	err    error
}

// run executes the CLI in-process inside a fresh working directory.
func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	res := result{exit: -1}
	g := NewGlobal(strings.NewReader(stdin), &stdout, &stderr)
	parser, err := New(&CLI{}, g,
		kong.Vars{"version": "v0.0.0-test"},
		kong.Exit(func(code int) { res.exit = code }))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err == nil {
		err = ctx.Run()
	}
	res.stdout, res.stderr, res.err = stdout.String(), stderr.String(), err
	return res
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRender_File(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	doc := writeFile(t, dir, "report.yaml", reportDoc)

	res := run(t, "", "render", doc)
	require.NoError(t, res.err)
	require.Equal(t, reportMarkdown, res.stdout)
}

func TestRender_Stdin(t *testing.T) {
	t.Chdir(t.TempDir())

	res := run(t, reportDoc, "render", "-")
	require.NoError(t, res.err)
	require.Equal(t, reportMarkdown, res.stdout)
}

func TestRender_InvalidDocument(t *testing.T) {
	t.Chdir(t.TempDir())

	res := run(t, "elements:\n  - banner: x\n", "render", "-")
	require.ErrorIs(t, res.err, foundation.CategoryValidation)
	require.Empty(t, res.stdout)
	require.Equal(t, 2, foundation.NewCLIErrorAdapter(false, nil).ExitCodeFor(res.err))
}

func TestRender_MalformedTable(t *testing.T) {
	t.Chdir(t.TempDir())

	res := run(t, "elements:\n  - table:\n      - [a, b]\n      - [c]\n", "render", "-")
	require.ErrorIs(t, res.err, summary.ErrMalformedTable)
	require.Equal(t, 3, foundation.NewCLIErrorAdapter(false, nil).ExitCodeFor(res.err))
}

func TestWrite_OutputFlagAppends(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := filepath.Join(dir, "summary.md")

	for range 2 {
		res := run(t, reportDoc, "write", "-", "--output", out)
		require.NoError(t, res.err)
	}
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, reportMarkdown+reportMarkdown, string(data))
}

func TestWrite_Overwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := writeFile(t, dir, "summary.md", "old content\n")

	res := run(t, reportDoc, "write", "-", "-o", out, "--overwrite")
	require.NoError(t, res.err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, reportMarkdown, string(data))
}

func TestWrite_StepSummaryEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := filepath.Join(dir, "step_summary.md")
	t.Setenv(summary.StepSummaryEnv, out)

	res := run(t, reportDoc, "write", "-")
	require.NoError(t, res.err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, reportMarkdown, string(data))
	require.Contains(t, res.stderr, "Summary written")
}

func TestWrite_CustomEnvVar(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := filepath.Join(dir, "custom.md")
	t.Setenv("MY_SUMMARY", out)

	res := run(t, reportDoc, "write", "-", "--env-var", "MY_SUMMARY")
	require.NoError(t, res.err)
	require.FileExists(t, out)
}

func TestWrite_MissingEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(summary.StepSummaryEnv, "")

	res := run(t, reportDoc, "write", "-")
	require.ErrorIs(t, res.err, summary.ErrSinkUnavailable)
	require.Equal(t, 11, foundation.NewCLIErrorAdapter(false, nil).ExitCodeFor(res.err))
}

func TestWrite_EmptyDocumentSkipsSink(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(summary.StepSummaryEnv, "")

	res := run(t, "elements: []\n", "write", "-")
	require.NoError(t, res.err)
	require.Contains(t, res.stderr, "nothing written")
}

func TestWrite_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("SUMMARY_DIR", dir)
	writeFile(t, dir, "ghsummary.yaml", "output:\n  path: ${SUMMARY_DIR}/from-config.md\nlogging:\n  level: debug\n")

	res := run(t, reportDoc, "write", "-")
	require.NoError(t, res.err)
	require.FileExists(t, filepath.Join(dir, "from-config.md"))
	require.Contains(t, res.stderr, "Configuration loaded")
}

func TestConfig_LogsEnvFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := filepath.Join(dir, "dotenv.md")
	t.Setenv(summary.StepSummaryEnv, "")
	require.NoError(t, os.Unsetenv(summary.StepSummaryEnv))
	writeFile(t, dir, ".env", summary.StepSummaryEnv+"="+out+"\n")

	res := run(t, reportDoc, "-v", "write", "-")
	require.NoError(t, res.err)
	require.FileExists(t, out)
	require.Contains(t, res.stderr, "Environment file loaded")
	require.Contains(t, res.stderr, "path=.env")
	require.Contains(t, res.stderr, "env_var="+summary.StepSummaryEnv)
}

func TestConfig_Missing(t *testing.T) {
	t.Chdir(t.TempDir())

	res := run(t, reportDoc, "-c", "nope.yaml", "render", "-")
	require.ErrorIs(t, res.err, foundation.CategoryConfig)
	require.Equal(t, 7, foundation.NewCLIErrorAdapter(false, nil).ExitCodeFor(res.err))
}

func TestConfig_BadLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())

	res := run(t, reportDoc, "--log-level", "loud", "render", "-")
	require.ErrorIs(t, res.err, foundation.CategoryValidation)
}

func TestVersionFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	res := run(t, "", "--version")
	require.Equal(t, 0, res.exit)
	require.Contains(t, res.stdout, "v0.0.0-test")
}

func TestWrite_MetricsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	out := filepath.Join(dir, "summary.md")
	metricsPath := filepath.Join(dir, "ghsummary.prom")

	res := run(t, reportDoc, "--metrics-file", metricsPath, "write", "-", "-o", out)
	require.NoError(t, res.err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, `ghsummary_elements_total{kind="table"} 1`)
	require.Contains(t, text, `ghsummary_write_results_total{result="success",sink="file"} 1`)
}

func TestWrite_MetricsFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(summary.StepSummaryEnv, "")
	metricsPath := filepath.Join(dir, "ghsummary.prom")

	res := run(t, reportDoc, "--metrics-file", metricsPath, "write", "-")
	require.ErrorIs(t, res.err, summary.ErrSinkUnavailable)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `ghsummary_write_results_total{result="failed",sink="env"} 1`)
}

func TestElementKind(t *testing.T) {
	require.Equal(t, "heading", elementKind(summary.Heading{}))
	require.Equal(t, "text", elementKind(summary.Paragraph{}))
	require.Equal(t, "code", elementKind(summary.CodeBlock{}))
	require.Equal(t, "table", elementKind(summary.Table{}))
	require.Equal(t, "link", elementKind(summary.LinkLine{}))
	require.Equal(t, "divider", elementKind(summary.Divider{}))
	require.Equal(t, "blank", elementKind(summary.BlankLine{}))
}
