package similarity

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/kljensen/snowball"
	"gopkg.in/yaml.v3"
)

//go:embed synsets.yaml
var defaultGraphYAML []byte

type synsetDoc struct {
	Synsets []struct {
		ID       string   `yaml:"id"`
		Words    []string `yaml:"words"`
		Hypernym string   `yaml:"hypernym"`
	} `yaml:"synsets"`
}

// Network is an undirected view of a hypernym tree. Distances are counted in edges.
type Network struct {
	byWord map[string][]string
	byStem map[string][]string
	adj    map[string][]string
}

func DefaultGraph() (*Network, error) {
	return ParseGraphYAML(defaultGraphYAML)
}

func LoadGraphYAML(path string) (*Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	return ParseGraphYAML(raw)
}

func ParseGraphYAML(raw []byte) (*Network, error) {
	var doc synsetDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	if len(doc.Synsets) == 0 {
		return nil, fmt.Errorf("decode graph: no synsets")
	}
	n := &Network{
		byWord: map[string][]string{},
		byStem: map[string][]string{},
		adj:    map[string][]string{},
	}
	for _, s := range doc.Synsets {
		if s.ID == "" {
			return nil, fmt.Errorf("decode graph: synset without id")
		}
		if _, dup := n.adj[s.ID]; dup {
			return nil, fmt.Errorf("decode graph: duplicate synset %s", s.ID)
		}
		n.adj[s.ID] = nil
	}
	for _, s := range doc.Synsets {
		if s.Hypernym != "" {
			if _, ok := n.adj[s.Hypernym]; !ok {
				return nil, fmt.Errorf("decode graph: synset %s has unknown hypernym %s", s.ID, s.Hypernym)
			}
			n.adj[s.ID] = append(n.adj[s.ID], s.Hypernym)
			n.adj[s.Hypernym] = append(n.adj[s.Hypernym], s.ID)
		}
		for _, w := range s.Words {
			key := normalize(w)
			if key == "" {
				continue
			}
			n.byWord[key] = appendUnique(n.byWord[key], s.ID)
			if st := stem(key); st != "" {
				n.byStem[st] = appendUnique(n.byStem[st], s.ID)
			}
		}
	}
	return n, nil
}

// Synsets returns the synsets holding word, falling back to words sharing its stem.
func (n *Network) Synsets(word string) []string {
	key := normalize(word)
	if ids, ok := n.byWord[key]; ok {
		return ids
	}
	if st := stem(key); st != "" {
		return n.byStem[st]
	}
	return nil
}

// PathLength is the number of hypernym edges between two synsets, ignoring direction.
func (n *Network) PathLength(a, b string) (int, bool) {
	if _, ok := n.adj[a]; !ok {
		return 0, false
	}
	if _, ok := n.adj[b]; !ok {
		return 0, false
	}
	if a == b {
		return 0, true
	}
	dist := map[string]int{a: 0}
	queue := []string{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range n.adj[cur] {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			if next == b {
				return dist[next], true
			}
			queue = append(queue, next)
		}
	}
	return 0, false
}

func (n *Network) Words() int {
	return len(n.byWord)
}

// stem only applies to single words; phrases are looked up verbatim.
func stem(word string) string {
	if word == "" || strings.ContainsRune(word, ' ') {
		return ""
	}
	st, err := snowball.Stem(word, "english", false)
	if err != nil {
		return ""
	}
	return st
}

func normalize(word string) string {
	return strings.ToLower(strings.Join(strings.Fields(word), " "))
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
