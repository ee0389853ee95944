// Package cmdtest runs in-process command lines described by YAML files and
// compares their output with the expectations stored next to them.
//
// A test file holds a list of cases, either at the top level or under a
// "tests" key:
//
//	tests:
//	  - name: hex
//	    cmd: numeral
//	    args: [number, "0x1A"]
//	    files:
//	      limits.yaml: "port: 0x1F90\n"
//	    expect:
//	      stdout: "26\n"
//	      exitCode: 0
//
// Files are written to a fresh directory that becomes the working directory
// for the case. In update mode mismatching expectations are written back
// to the YAML file, keeping its comments and layout.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Expect is the observable result of a case.
type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// Case is one command line to run.
type Case struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env"`
	Files       map[string]string `yaml:"files"`
	Expect      Expect            `yaml:"expect"`
}

// Group is the content of one YAML file.
type Group struct {
	Name  string
	Cases []Case `yaml:"tests"`

	path      string
	root      *yaml.Node
	caseNodes []*yaml.Node
}

// Suite holds the groups read from a directory and the commands they run.
type Suite struct {
	groups   []*Group
	commands map[string]func() int
	mu       sync.Mutex
}

// Read loads every .yaml and .yml file below dir.
func Read(dir string) (*Suite, error) {
	suite := &Suite{commands: make(map[string]func() int)}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if ext := strings.ToLower(filepath.Ext(path)); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		group, err := readGroup(path)
		if err != nil {
			return err
		}
		suite.groups = append(suite.groups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

func readGroup(path string) (*Group, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: empty yaml", path)
	}

	casesNode, err := locateCases(root.Content[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	group := &Group{Name: filepath.Base(path), path: path, root: &root}
	if err := casesNode.Decode(&group.Cases); err != nil {
		return nil, fmt.Errorf("%s: decode tests: %w", path, err)
	}
	group.caseNodes = casesNode.Content
	return group, nil
}

// Register binds the name used in the "cmd" field to an entry point that
// reads os.Args and returns an exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes every case as a subtest. With update set, mismatches are
// written back instead of reported.
func (s *Suite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		t.Run(group.Name, func(t *testing.T) {
			for i := range group.Cases {
				name := group.Cases[i].Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					s.runCase(t, group, i, update)
				})
			}
		})
	}
}

type result struct {
	stdout, stderr string
	exitCode       int
}

func (s *Suite) runCase(t *testing.T, group *Group, idx int, update bool) {
	c := &group.Cases[idx]
	run, ok := s.commands[c.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", c.Cmd)
	}

	dir := t.TempDir()
	for name, content := range c.Files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}

	got := capture(t, dir, append([]string{c.Cmd}, c.Args...), c.Env, run)

	changes := s.compare(t, group, idx, got, update)
	if update && len(changes) > 0 {
		if err := group.persist(); err != nil {
			t.Fatalf("persist %s: %v", group.path, err)
		}
		t.Logf("cmdtest: updated %s: %s", group.path, strings.Join(changes, "; "))
	}
}

// capture runs fn with os.Args, the environment, the working directory and
// the standard streams swapped, and restores them afterwards.
func capture(t *testing.T, dir string, args []string, env map[string]string, fn func() int) result {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	for k, v := range env {
		t.Setenv(k, v)
	}

	oldArgs, oldStdout, oldStderr := os.Args, os.Stdout, os.Stderr
	defer func() { os.Args, os.Stdout, os.Stderr = oldArgs, oldStdout, oldStderr }()

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Args, os.Stdout, os.Stderr = args, wOut, wErr

	var res result
	var wg sync.WaitGroup
	wg.Add(2)
	drain := func(r *os.File, dst *string) {
		defer wg.Done()
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		*dst = buf.String()
	}
	go drain(rOut, &res.stdout)
	go drain(rErr, &res.stderr)

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				res.exitCode = -1
			}
		}()
		res.exitCode = fn()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()
	return res
}

func (s *Suite) compare(t *testing.T, group *Group, idx int, got result, update bool) []string {
	c := &group.Cases[idx]
	expectNode := ensureMapValue(group.caseNodes[idx], "expect")

	var changes []string
	if got.exitCode != c.Expect.ExitCode {
		if update {
			c.Expect.ExitCode = got.exitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), got.exitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", got.exitCode))
		} else {
			t.Errorf("exit code mismatch:\nexpected: %d\nactual:   %d", c.Expect.ExitCode, got.exitCode)
		}
	}
	check := func(field, want, have string, set func(string)) {
		if want == have {
			return
		}
		if update {
			set(have)
			setStringScalar(ensureMapValue(expectNode, field), have)
			changes = append(changes, fmt.Sprintf("%s=%q", field, summarize(have)))
			return
		}
		t.Errorf("%s mismatch:\nexpected:\n%s\nactual:\n%s", field, want, have)
	}
	check("stdout", c.Expect.Stdout, got.stdout, func(v string) { c.Expect.Stdout = v })
	check("stderr", c.Expect.Stderr, got.stderr, func(v string) { c.Expect.Stderr = v })
	return changes
}

func (g *Group) persist() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(g.root.Content[0]); err != nil {
		_ = enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(g.path, buf.Bytes(), 0o644)
}

// locateCases finds the case list: the document itself when it is a
// sequence, otherwise the value of its "tests" key.
func locateCases(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.SequenceNode:
		return doc, nil
	case yaml.MappingNode:
		tests := findMapValue(doc, "tests")
		if tests == nil {
			return nil, fmt.Errorf("missing 'tests' key")
		}
		if tests.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("tests must be a sequence")
		}
		return tests, nil
	}
	return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	node.Style = 0
	// A lone line break would otherwise be written as an empty literal block.
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Value = strconv.Itoa(val)
}

func summarize(s string) string {
	s = strings.NewReplacer("\n", `\n`, "\t", `\t`).Replace(s)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}

// Names lists the groups in the suite, sorted.
func (s *Suite) Names() []string {
	names := make([]string, 0, len(s.groups))
	for _, g := range s.groups {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return names
}
