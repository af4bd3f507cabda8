// Package lexicon holds the formal-to-casual synonym dictionary used by the humanizer.
//
// A Store is immutable once built and safe for concurrent use.
package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"text_humanizer/internal/phrases"
)

type Store struct {
	entries map[string][]string
	keys    []string
	matcher *phrases.Matcher
}

type Stats struct {
	TotalWords        int     `json:"total_words"`
	WordsWithSynonyms int     `json:"words_with_synonyms"`
	AverageSynonyms   float64 `json:"average_synonyms_per_word"`
	TotalPatterns     int     `json:"total_patterns"`
}

// LoadResult carries the store plus the reason it fell back to the built-in table, if it did.
type LoadResult struct {
	Store    *Store
	Source   string
	Degraded bool
	Reason   string
}

func New(entries map[string][]string) *Store {
	s := &Store{entries: make(map[string][]string, len(entries))}
	for word, alts := range entries {
		s.add(word, alts)
	}
	s.index()
	return s
}

// LoadJSON reads a {"word": ["alt", ...]} file. A missing or malformed file yields the built-in
// table with Degraded set.
func LoadJSON(path string) LoadResult {
	if strings.TrimSpace(path) == "" {
		return LoadResult{Store: Builtin(), Source: "builtin"}
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		reason := fmt.Sprintf("read dictionary: %v", err)
		if errors.Is(err, fs.ErrNotExist) {
			reason = fmt.Sprintf("dictionary file %s not found, using built-in dictionary", path)
		}
		return LoadResult{Store: Builtin(), Source: "builtin", Degraded: true, Reason: reason}
	}
	store, err := ParseJSON(raw)
	if err != nil {
		return LoadResult{Store: Builtin(), Source: "builtin", Degraded: true, Reason: err.Error()}
	}
	return LoadResult{Store: store, Source: path}
}

func ParseJSON(raw []byte) (*Store, error) {
	var entries map[string][]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	store := New(entries)
	if store.Len() == 0 {
		return nil, fmt.Errorf("decode dictionary: no usable entries")
	}
	return store, nil
}

// Merge returns a new store with other's candidates appended after s's for shared keys.
func (s *Store) Merge(other *Store) *Store {
	out := &Store{entries: make(map[string][]string, len(s.entries)+len(other.entries))}
	for _, k := range s.keys {
		out.add(k, s.entries[k])
	}
	for _, k := range other.keys {
		out.add(k, other.entries[k])
	}
	out.index()
	return out
}

func (s *Store) Lookup(word string) ([]string, bool) {
	alts, ok := s.entries[normalizeKey(word)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), alts...), true
}

func (s *Store) Has(word string) bool {
	_, ok := s.entries[normalizeKey(word)]
	return ok
}

// Keys returns the keys longest first, so phrases win over the words inside them.
func (s *Store) Keys() []string {
	return append([]string(nil), s.keys...)
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Matcher matches any key as a whole word, case-insensitively. Matches never overlap and the
// longest key wins at each position. It is nil for an empty store.
func (s *Store) Matcher() *phrases.Matcher {
	return s.matcher
}

func (s *Store) Stats(extraPatterns int) Stats {
	st := Stats{TotalWords: len(s.entries), TotalPatterns: len(s.entries) + extraPatterns}
	total := 0
	for _, alts := range s.entries {
		if len(alts) > 0 {
			st.WordsWithSynonyms++
		}
		total += len(alts)
	}
	if len(s.entries) > 0 {
		st.AverageSynonyms = float64(total) / float64(len(s.entries))
	}
	return st
}

func (s *Store) add(word string, alts []string) {
	key := normalizeKey(word)
	if key == "" {
		return
	}
	existing := s.entries[key]
	seen := make(map[string]struct{}, len(existing)+len(alts))
	for _, a := range existing {
		seen[strings.ToLower(a)] = struct{}{}
	}
	for _, a := range alts {
		a = strings.Join(strings.Fields(a), " ")
		lower := strings.ToLower(a)
		if a == "" || lower == key {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		existing = append(existing, a)
	}
	if len(existing) == 0 {
		return
	}
	s.entries[key] = existing
}

func (s *Store) index() {
	s.keys = make([]string, 0, len(s.entries))
	for k := range s.entries {
		s.keys = append(s.keys, k)
	}
	sort.Slice(s.keys, func(i, j int) bool {
		if len(s.keys[i]) != len(s.keys[j]) {
			return len(s.keys[i]) > len(s.keys[j])
		}
		return s.keys[i] < s.keys[j]
	})
	if len(s.keys) == 0 {
		s.matcher = nil
		return
	}
	s.matcher = phrases.MustNew(s.keys)
}

func normalizeKey(word string) string {
	return strings.ToLower(strings.Join(strings.Fields(word), " "))
}
