package sqlite

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rplatt/edenweb"
)

// Compile-time interface verification.
var _ edenweb.AnalysisService = (*AnalysisService)(nil)

// AnalysisService implements edenweb.AnalysisService using SQLite.
type AnalysisService struct {
	db *DB
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(db *DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreatePageAnalysis stores a new analysis record, assigning its id,
// content hash, and timestamp.
func (s *AnalysisService) CreatePageAnalysis(ctx context.Context, p *edenweb.PageAnalysis) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.ID = uuid.New().String()
	p.AnalyzedAt = time.Now().UTC()
	p.ContentHash = hashContent(p.HTML)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO page_analyses (id, filename, title, text, html, content_hash, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Filename, p.Title, p.Text, p.HTML, p.ContentHash,
		p.AnalyzedAt.Format(time.RFC3339))

	return err
}

// FindPageAnalyses retrieves all analysis records in filename order.
func (s *AnalysisService) FindPageAnalyses(ctx context.Context) ([]*edenweb.PageAnalysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, title, text, html, content_hash, analyzed_at
		FROM page_analyses
		ORDER BY filename
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var analyses []*edenweb.PageAnalysis
	for rows.Next() {
		var p edenweb.PageAnalysis
		var analyzedAt string
		if err := rows.Scan(&p.ID, &p.Filename, &p.Title, &p.Text, &p.HTML, &p.ContentHash, &analyzedAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, analyzedAt); err == nil {
			p.AnalyzedAt = t
		}
		analyses = append(analyses, &p)
	}
	return analyses, rows.Err()
}
