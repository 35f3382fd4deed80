// Package retrieval implements keyword-overlap document retrieval backing the
// RAG context for prompts. Documents persist as JSON under the vector DB
// directory.
package retrieval

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const documentsFile = "documents.json"

// DefaultTopK bounds how many documents a retrieval returns.
const DefaultTopK = 5

// Document is one stored knowledge-base entry.
type Document struct {
	ID       int               `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

// Stats summarizes the state of a Store.
type Stats struct {
	TotalDocuments int    `json:"total_documents"`
	Path           string `json:"vector_db_path"`
	SystemReady    bool   `json:"system_ready"`
}

// Store holds the document collection and its on-disk location.
type Store struct {
	path      string
	documents []Document
	logger    *zap.Logger
}

// NewStore opens the store at path, creating the directory when absent. An
// unreadable documents file is logged and treated as empty rather than
// failing startup.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create vector db directory: %w", err)
	}

	s := &Store{path: path, logger: logger}

	data, err := os.ReadFile(filepath.Join(path, documentsFile))
	if err == nil {
		if err := json.Unmarshal(data, &s.documents); err != nil {
			logger.Error("failed to load documents", zap.Error(err))
			s.documents = nil
		} else {
			logger.Info("loaded documents", zap.Int("count", len(s.documents)))
		}
	} else if !os.IsNotExist(err) {
		logger.Error("failed to read documents file", zap.Error(err))
	}

	return s, nil
}

// Len reports how many documents are stored.
func (s *Store) Len() int {
	return len(s.documents)
}

// AddDocument appends a document and persists the whole collection. IDs are
// assigned sequentially in insertion order.
func (s *Store) AddDocument(content string, metadata map[string]string) error {
	if metadata == nil {
		metadata = map[string]string{}
	}
	doc := Document{
		ID:       len(s.documents),
		Content:  content,
		Metadata: metadata,
	}
	s.documents = append(s.documents, doc)

	if err := s.save(); err != nil {
		return err
	}
	s.logger.Info("added document", zap.Int("id", doc.ID))
	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.documents, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal documents: %w", err)
	}
	file := filepath.Join(s.path, documentsFile)
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("save documents: %w", err)
	}
	return nil
}

// Retrieve scores each document by how many query tokens occur as substrings
// of its lower-cased content, drops zero scores, and returns the topK best.
// Ties keep insertion order.
func (s *Store) Retrieve(query string, topK int) []Document {
	if len(s.documents) == 0 {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	terms := strings.Fields(strings.ToLower(query))

	type scored struct {
		doc   Document
		score int
	}
	var matches []scored
	for _, doc := range s.documents {
		content := strings.ToLower(doc.Content)
		score := 0
		for _, term := range terms {
			if strings.Contains(content, term) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{doc: doc, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	result := make([]Document, len(matches))
	for i, m := range matches {
		result[i] = m.doc
	}
	return result
}

// ContextForQuery concatenates retrieved documents, blank-line separated,
// skipping from the first document that would push the total past maxLength.
// A document is included whole or not at all. Reports false when nothing
// qualifies.
func (s *Store) ContextForQuery(query string, maxLength int) (string, bool) {
	docs := s.Retrieve(query, DefaultTopK)
	if len(docs) == 0 {
		return "", false
	}

	var parts []string
	length := 0
	for _, doc := range docs {
		if length+len(doc.Content) > maxLength {
			break
		}
		parts = append(parts, doc.Content)
		length += len(doc.Content)
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, "\n\n"), true
}

// AddKnowledgeBase ingests every .txt, .md, and .json file in dir as a
// document. Unreadable files are logged and skipped.
func (s *Store) AddKnowledgeBase(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read knowledge base: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch filepath.Ext(name) {
		case ".txt", ".md", ".json":
		default:
			continue
		}

		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Error("failed to read knowledge base file", zap.String("file", name), zap.Error(err))
			continue
		}

		if err := s.AddDocument(string(content), map[string]string{
			"source":    name,
			"file_path": path,
		}); err != nil {
			return err
		}
		s.logger.Info("ingested knowledge base file", zap.String("file", name))
	}
	return nil
}

// Statistics reports the store's current state.
func (s *Store) Statistics() Stats {
	return Stats{
		TotalDocuments: len(s.documents),
		Path:           s.path,
		SystemReady:    len(s.documents) > 0,
	}
}
