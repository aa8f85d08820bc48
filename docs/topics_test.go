package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code block kinds executed by TestCodeBlocks.
const (
	bashSetup    = "bash setup"    // runs in a fresh folder
	bashRun      = "bash run"      // runs, its output is kept for the next check
	consoleCheck = "console check" // expected output of the previous run
)

// readmeTopics returns the topics listed as "* topic: description" in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	content, err := os.ReadFile(index + ".md")
	if err != nil {
		t.Fatalf("failed to read the index: %v", err)
	}
	var topics []string
	for _, m := range regexp.MustCompile(`(?m)^\*\s+([^:]+):`).FindAllStringSubmatch(string(content), -1) {
		topics = append(topics, strings.TrimSpace(m[1]))
	}
	return topics
}

func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("listed topic %q cannot be loaded: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	var want []string
	for _, f := range files {
		if base := strings.TrimSuffix(f, ".md"); base != index {
			want = append(want, base)
			if !slices.Contains(listed, base) {
				t.Errorf("topic %q is not listed in %s.md", base, index)
			}
		}
	}
	if !slices.Equal(all, want) {
		t.Errorf("GetAllTopics() = %v, want %v", all, want)
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Errorf("expected an error for an unknown topic")
	}
}

func TestGetTopics_All(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, title := range []string{"# Sign convention", "# Annuity due", "# Scenario files"} {
		if !strings.Contains(all, title) {
			t.Errorf("all topics miss %q", title)
		}
	}
}

// TestCodeBlocks runs the shell examples of the documentation against a
// freshly built tvmcalc.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	bin := filepath.Join(t.TempDir(), "tvmcalc")
	if out, err := exec.Command("go", "build", "-o", bin, "../tvmcalc/").CombinedOutput(); err != nil {
		t.Fatalf("failed to build tvmcalc: %v\n%s", err, out)
	}
	env := append(os.Environ(),
		fmt.Sprintf("PATH=%s%c%s", filepath.Dir(bin), os.PathListSeparator, os.Getenv("PATH")),
		// an inherited default currency would change the outputs.
		"TVMCALC_CURRENCY=",
		"TVMCALC_VERBOSE=false",
	)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			dir := t.TempDir()
			var output string
			for _, b := range parseBlocks(t, file) {
				switch b.kind {
				case consoleCheck:
					got := strings.ReplaceAll(strings.TrimSpace(output), "\t", "        ")
					if want := strings.TrimSpace(b.content); got != want {
						t.Errorf("%s:%d: got:\n%s\nwant:\n%s", file, b.line, got, want)
					}
					continue
				case bashSetup:
					dir = t.TempDir()
				}
				cmd := exec.Command("bash", "-c", "set -e; "+b.content)
				cmd.Dir = dir
				cmd.Env = env
				out, err := cmd.CombinedOutput()
				if err != nil {
					t.Fatalf("%s:%d: %s failed: %v\n%s", file, b.line, b.kind, err, out)
				}
				output = string(out)
			}
		})
	}
}

// block is an executable fenced code block.
type block struct {
	kind    string
	content string
	line    int
}

// parseBlocks returns the executable fenced code blocks of a markdown file.
func parseBlocks(t *testing.T, file string) []block {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	var blocks []block
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(source))
		if kind != bashSetup && kind != bashRun && kind != consoleCheck {
			return ast.WalkContinue, nil
		}
		var content strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			content.Write(seg.Value(source))
		}
		blocks = append(blocks, block{
			kind:    kind,
			content: content.String(),
			line:    bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n")) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}
