// Package normalize rewrites the numbers and intervals of a YAML document
// into canonical form while keeping its layout and comments.
package normalize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vipcxj/numeral/internal/interval"
	"github.com/vipcxj/numeral/internal/literal"
	"github.com/vipcxj/numeral/internal/logging"
)

// Options tune the rewrite.
type Options struct {
	// PreserveBase keeps hex, binary and octal integers in their base.
	PreserveBase bool
	// Logger receives one debug record per rewrite. Nil discards them.
	Logger *slog.Logger
}

// Change records one rewritten scalar. Path is a JSONPath-like location
// such as $.limits.port or $.steps[2].
type Change struct {
	Path   string
	Before string
	After  string
}

// Bytes normalizes every document in data and re-encodes it with two space
// indentation. Input without any document is returned unchanged.
func Bytes(ctx context.Context, data []byte, opts Options) ([]byte, []Change, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)

	var changes []Change
	for i := 0; ; i++ {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 {
					return data, nil, nil
				}
				break
			}
			return nil, nil, fmt.Errorf("decode document %d: %w", i, err)
		}
		changes = append(changes, Node(ctx, &doc, opts)...)
		if err := enc.Encode(&doc); err != nil {
			return nil, nil, fmt.Errorf("encode document %d: %w", i, err)
		}
	}
	if err := enc.Close(); err != nil {
		return nil, nil, fmt.Errorf("encode: %w", err)
	}
	return out.Bytes(), changes, nil
}

// Node rewrites root in place and returns what changed.
//
// Plain scalars resolved as !!int or !!float are replaced by their
// canonical literal when literal.Parse accepts them; YAML-only spellings
// such as .inf or 1_000 are left alone. String scalars holding an interval,
// or intervals joined by ';', are replaced by their canonical form. Mapping
// keys are never touched.
func Node(ctx context.Context, root *yaml.Node, opts Options) []Change {
	w := walker{ctx: ctx, opts: opts, logger: logging.OrDiscard(opts.Logger)}
	w.walk(root, "$")
	return w.changes
}

type walker struct {
	ctx     context.Context
	opts    Options
	logger  *slog.Logger
	changes []Change
}

func (w *walker) walk(n *yaml.Node, path string) {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			w.walk(c, path)
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			w.walk(c, path+"["+strconv.Itoa(i)+"]")
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			w.walk(n.Content[i+1], path+"."+n.Content[i].Value)
		}
	case yaml.ScalarNode:
		w.scalar(n, path)
	}
}

func (w *walker) scalar(n *yaml.Node, path string) {
	before := n.Value
	switch n.ShortTag() {
	case "!!int", "!!float":
		if n.Style != 0 {
			return
		}
		after, ok := w.number(n.Value)
		if !ok || after == before {
			return
		}
		n.Value = after
		// Let the encoder resolve the tag again; 1e10 becomes an int.
		n.Tag = ""
	case "!!str":
		after, ok := canonicalInterval(n.Value)
		if !ok || after == before {
			return
		}
		n.Value = after
		if n.Style == 0 {
			n.Style = yaml.DoubleQuotedStyle
		}
	default:
		return
	}
	w.changes = append(w.changes, Change{Path: path, Before: before, After: n.Value})
	w.logger.DebugContext(w.ctx, "normalized scalar",
		slog.String("path", path),
		slog.String("before", before),
		slog.String("after", n.Value),
	)
}

func (w *walker) number(text string) (string, bool) {
	v, g, err := literal.ParseWithGrammar(text)
	if err != nil {
		return "", false
	}
	if g == literal.GrammarDecimalInteger && hasLeadingZero(text) {
		// YAML 1.1 readers take 010 as octal; rewriting it would pick a side.
		return "", false
	}
	if w.opts.PreserveBase {
		return literal.FormatBase(v), true
	}
	return literal.Format(v), true
}

func hasLeadingZero(text string) bool {
	digits := strings.TrimLeft(strings.TrimSpace(text), "+-")
	return len(digits) > 1 && digits[0] == '0'
}

func canonicalInterval(text string) (string, bool) {
	if !strings.Contains(text, "..") {
		return "", false
	}
	if strings.Contains(text, ";") {
		set, err := interval.ParseSet(text)
		if err != nil {
			return "", false
		}
		return interval.FormatSet(set), true
	}
	iv, err := interval.Parse(text)
	if err != nil {
		return "", false
	}
	return interval.Format(iv), true
}
