package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/more-shubham/resume/internal/domain"
)

const validResume = `contact:
  name: Ada Lovelace
  email: ada@example.com
  leetcode: https://leetcode.com/ada
summary: Engineer.
skills:
  - category: Languages
    items: [Go, Python]
experience:
  - company: X
    role: Eng
    location: Y
    start_date: Jan 2020
    end_date: present
    bullets:
      - Did things
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to not exist, stat err=%v", path, err)
	}
}

// --- error categories ---

func TestCategoryAndDescribe(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		prefix   string
		describe string
	}{
		{
			"not found",
			&domain.OpError{Op: "yamlsource.read", Kind: domain.KindNotFound, Path: "cv.yaml", Err: domain.ErrNotFound},
			prefixParse, "File not found: cv.yaml",
		},
		{
			"empty",
			&domain.OpError{Op: "yamlsource.read", Kind: domain.KindParse, Path: "cv.yaml", Err: domain.ErrEmptyDocument},
			prefixParse, "YAML file is empty",
		},
		{
			"syntax",
			&domain.OpError{Op: "yamlsource.parse", Kind: domain.KindParse, Path: "cv.yaml", Err: errors.New("yaml: line 2: mapping values are not allowed in this context")},
			prefixParse, "Invalid YAML syntax: yaml: line 2: mapping values are not allowed in this context",
		},
		{
			"validation",
			&domain.OpError{Op: "resume.validate", Kind: domain.KindValidation, Err: domain.Issues{{Code: domain.CodeRequired, Field: "email"}}.Err()},
			prefixValidation, "Validation failed: Missing required field: 'email'",
		},
		{
			"execution",
			&domain.OpError{Op: "pdfrender.write", Kind: domain.KindExecution, Err: errors.New("disk full")},
			prefixUnexpected, "pdfrender.write: execution: disk full",
		},
		{"plain", errors.New("boom"), prefixUnexpected, "boom"},
	}

	for _, c := range cases {
		if got := category(c.err); got != c.prefix {
			t.Errorf("%s: category() = %q, want %q", c.name, got, c.prefix)
		}
		if got := describe(c.err); got != c.describe {
			t.Errorf("%s: describe() = %q, want %q", c.name, got, c.describe)
		}
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"validate", "query", "preview", "history", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"input", "output", "debug", "workspace"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on root command", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("dir") == nil {
		t.Error("expected --dir flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- generate ---

func TestGenerate_WritesPDF(t *testing.T) {
	ws := t.TempDir()
	input := filepath.Join(ws, "cv.yaml")
	output := filepath.Join(ws, "nested", "cv.pdf")
	writeFile(t, input, validResume)

	code, stdout, stderr := runCLI(t, "--workspace", ws, "--input", input, "--output", output)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr)
	}
	if !strings.Contains(stdout, output) {
		t.Fatalf("expected output path in stdout, got %q", stdout)
	}
	info, err := os.Stat(output)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty PDF, stat err=%v", err)
	}
}

func TestGenerate_UsesConfiguredPaths(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, domain.ConfigFileName), "paths:\n  output: build/cv.pdf\npage:\n  size: a4\n")
	writeFile(t, filepath.Join(ws, domain.DefaultInputPath), validResume)

	code, _, stderr := runCLI(t, "--workspace", ws)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(ws, "build", "cv.pdf")); err != nil {
		t.Fatalf("expected configured output, stat err=%v", err)
	}
}

func TestGenerate_MissingFile(t *testing.T) {
	ws := t.TempDir()
	output := filepath.Join(ws, "out", "cv.pdf")

	code, _, stderr := runCLI(t, "--workspace", ws, "--input", filepath.Join(ws, "nope.yaml"), "--output", output)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr, "Parse error: File not found:") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	assertNotExists(t, output)
	assertNotExists(t, filepath.Dir(output))
}

func TestGenerate_InvalidData(t *testing.T) {
	ws := t.TempDir()
	input := filepath.Join(ws, "cv.yaml")
	output := filepath.Join(ws, "cv.pdf")
	writeFile(t, input, "contact:\n  name: Ada\nsummary: s\n")

	code, _, stderr := runCLI(t, "--workspace", ws, "--input", input, "--output", output)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr, "Validation error: Validation failed: Missing required field: 'email'") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
	assertNotExists(t, output)
}

func TestGenerate_ParseFailures(t *testing.T) {
	cases := []struct {
		name    string
		content string
		prefix  string
	}{
		{"empty", "   \n", "Parse error: YAML file is empty"},
		{"null", "~\n", "Parse error: YAML file is empty"},
		{"syntax", "contact: [unclosed\n", "Parse error: Invalid YAML syntax:"},
	}

	for _, c := range cases {
		ws := t.TempDir()
		input := filepath.Join(ws, "cv.yaml")
		output := filepath.Join(ws, "cv.pdf")
		writeFile(t, input, c.content)

		code, _, stderr := runCLI(t, "--workspace", ws, "--input", input, "--output", output)
		if code != 1 {
			t.Errorf("%s: expected exit 1, got %d", c.name, code)
		}
		if !strings.HasPrefix(stderr, c.prefix) {
			t.Errorf("%s: expected prefix %q, got %q", c.name, c.prefix, stderr)
		}
		assertNotExists(t, output)
	}
}

func TestGenerate_InvalidConfigIsUnexpected(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, domain.ConfigFileName), "page:\n  size: tabloid\n")

	code, _, stderr := runCLI(t, "--workspace", ws)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr, "Unexpected error:") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

// --- validate ---

func TestValidate_OK(t *testing.T) {
	ws := t.TempDir()
	input := filepath.Join(ws, "cv.yaml")
	writeFile(t, input, validResume)

	code, stdout, _ := runCLI(t, "validate", "--workspace", ws, "--input", input)
	if code != 0 || strings.TrimSpace(stdout) != "OK" {
		t.Fatalf("expected OK, got code=%d stdout=%q", code, stdout)
	}
}

func TestValidate_JSONListsIssues(t *testing.T) {
	ws := t.TempDir()
	input := filepath.Join(ws, "cv.yaml")
	writeFile(t, input, "contact:\n  name: Ada\n  email: nope\n")

	code, stdout, stderr := runCLI(t, "validate", "--workspace", ws, "--input", input, "--format", "json")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.HasPrefix(stderr, "Validation error:") {
		t.Fatalf("unexpected stderr %q", stderr)
	}

	var payload struct {
		Valid  bool `json:"valid"`
		Issues []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"issues"`
	}
	if err := gojson.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if payload.Valid || len(payload.Issues) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Issues[0].Message != "Missing required field: 'summary'" || payload.Issues[1].Code != "invalid_email" {
		t.Fatalf("unexpected issues: %+v", payload.Issues)
	}
}

func TestValidate_UnknownFormat(t *testing.T) {
	code, _, stderr := runCLI(t, "validate", "--format", "xml")
	if code != 1 || !strings.Contains(stderr, "xml") {
		t.Fatalf("expected format error, got code=%d stderr=%q", code, stderr)
	}
}

// --- query ---

func TestQuery_Pretty(t *testing.T) {
	ws := t.TempDir()
	input := filepath.Join(ws, "cv.yaml")
	writeFile(t, input, validResume)

	code, stdout, stderr := runCLI(t, "query", "--workspace", ws, "--input", input,
		"$.contact.name", "$.skills[0].items", "$.missing")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr)
	}

	for _, want := range []string{
		"$.contact.name = Ada Lovelace",
		`$.skills[0].items = ["Go","Python"]`,
		"$.missing: ",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestQuery_RequiresExpression(t *testing.T) {
	code, _, _ := runCLI(t, "query")
	if code != 1 {
		t.Fatalf("expected exit 1 without expressions, got %d", code)
	}
}

// --- history ---

func TestHistory_ListsSuccessfulRenders(t *testing.T) {
	ws := t.TempDir()
	writeFile(t, filepath.Join(ws, domain.DefaultInputPath), validResume)

	if code, _, stderr := runCLI(t, "--workspace", ws); code != 0 {
		t.Fatalf("generate failed: %d %q", code, stderr)
	}
	// A failed render is not recorded.
	if code, _, _ := runCLI(t, "--workspace", ws, "--input", filepath.Join(ws, "missing.yaml")); code != 1 {
		t.Fatalf("expected failure for missing input")
	}

	code, stdout, stderr := runCLI(t, "history", "--workspace", ws, "--format", "json")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr)
	}

	var recs []domain.RenderRecord
	if err := gojson.Unmarshal([]byte(stdout), &recs); err != nil {
		t.Fatalf("history is not JSON: %v\n%s", err, stdout)
	}
	if len(recs) != 1 || recs[0].Name != "Ada Lovelace" || recs[0].ID == "" {
		t.Fatalf("unexpected history: %+v", recs)
	}
}

func TestHistory_EmptyWorkspace(t *testing.T) {
	code, stdout, _ := runCLI(t, "history", "--workspace", t.TempDir())
	if code != 0 || !strings.Contains(stdout, "No renders yet.") {
		t.Fatalf("unexpected output: code=%d %q", code, stdout)
	}
}

func TestGenerate_OutputPlaceholders(t *testing.T) {
	ws := t.TempDir()
	input := filepath.Join(ws, "cv.yaml")
	writeFile(t, input, validResume)

	code, _, stderr := runCLI(t, "--workspace", ws, "--input", input, "--output", filepath.Join(ws, "{{slug}}.pdf"))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(ws, "ada-lovelace.pdf")); err != nil {
		t.Fatalf("expected expanded output name, stat err=%v", err)
	}
}

// --- init / version ---

func TestInit_ScaffoldsWorkspace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cv")

	code, stdout, stderr := runCLI(t, "init", "--dir", dir)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%q)", code, stderr)
	}
	if !strings.Contains(stdout, dir) || !strings.Contains(stdout, "wrote resume.yaml") {
		t.Fatalf("expected directory and written files in output, got %q", stdout)
	}
	for _, p := range []string{domain.ConfigFileName, domain.DefaultInputPath, ".gitignore"} {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			t.Fatalf("expected %s, stat err=%v", p, err)
		}
	}

	code, _, stderr = runCLI(t, "--workspace", dir)
	if code != 0 {
		t.Fatalf("expected the sample resume to render, got %d (stderr=%q)", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, domain.DefaultOutputPath)); err != nil {
		t.Fatalf("expected rendered sample, stat err=%v", err)
	}

	code, stdout, _ = runCLI(t, "init", "--dir", dir)
	if code != 0 || !strings.Contains(stdout, "kept  resume.yaml") || !strings.Contains(stdout, "--force") {
		t.Fatalf("expected existing files to be kept on re-init, got %d %q", code, stdout)
	}
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	if code != 0 || !strings.HasPrefix(stdout, "resume ") {
		t.Fatalf("unexpected version output: code=%d %q", code, stdout)
	}
}

// --- workspace resolution ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestWorkspacePaths_FlagsWinOverConfig(t *testing.T) {
	ws := &workspaceCtx{root: "/ws", cfg: domain.DefaultConfig()}

	if got := ws.inputPath(""); got != filepath.Join("/ws", domain.DefaultInputPath) {
		t.Errorf("expected configured input under root, got %q", got)
	}
	if got := ws.outputPath("custom/out.pdf"); got != filepath.Join("custom", "out.pdf") {
		t.Errorf("expected flag output, got %q", got)
	}
}
