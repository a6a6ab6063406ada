package wordfilter

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// wordFile is the mapping form of a YAML word file.
type wordFile struct {
	Words []string `yaml:"words"`
}

// LoadFile reads a word list from path.
//
// Files ending in .yaml or .yml are decoded with yaml.v3 and may hold either
// a top-level sequence or a mapping with a "words" key. Any other file is read
// as plain text with one word per line; blank lines and lines starting with
// '#' are ignored.
func LoadFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadWordFile, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseText(data), nil
	}
}

// ParseYAML decodes a YAML word list.
func ParseYAML(data []byte) (*List, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewList(), nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Join(ErrParseWordFile, err)
	}
	if len(node.Content) == 0 {
		return NewList(), nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var words []string
		if err := root.Decode(&words); err != nil {
			return nil, errors.Join(ErrParseWordFile, err)
		}
		return NewList(words...), nil
	case yaml.MappingNode:
		var wf wordFile
		if err := root.Decode(&wf); err != nil {
			return nil, errors.Join(ErrParseWordFile, err)
		}
		return NewList(wf.Words...), nil
	default:
		return nil, errors.Join(ErrParseWordFile, errors.New("expected a sequence or a mapping with a words key"))
	}
}

// ParseText reads one word per line.
func ParseText(data []byte) *List {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return NewList(words...)
}
