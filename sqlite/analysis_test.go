package sqlite_test

import (
	"context"
	"testing"

	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAnalysisService_CreatePageAnalysis(t *testing.T) {
	t.Parallel()

	t.Run("assigns id, hash, and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(mustOpenDB(t))
		p := &edenweb.PageAnalysis{
			Filename: "fbe005.htm",
			Title:    "Chapter I",
			Text:     "They went forth weeping.",
			HTML:     "<p>They went forth weeping.</p>\n",
		}

		err := svc.CreatePageAnalysis(context.Background(), p)
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.ContentHash)
		assert.False(t, p.AnalyzedAt.IsZero())
	})

	t.Run("identical fragments hash identically", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(mustOpenDB(t))
		a := &edenweb.PageAnalysis{Filename: "fbe005.htm", HTML: "<p>same</p>"}
		b := &edenweb.PageAnalysis{Filename: "fbe006.htm", HTML: "<p>same</p>"}
		c := &edenweb.PageAnalysis{Filename: "fbe007.htm", HTML: "<p>different</p>"}

		require.NoError(t, svc.CreatePageAnalysis(context.Background(), a))
		require.NoError(t, svc.CreatePageAnalysis(context.Background(), b))
		require.NoError(t, svc.CreatePageAnalysis(context.Background(), c))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ContentHash, c.ContentHash)
	})

	t.Run("rejects records without a filename", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(mustOpenDB(t))
		err := svc.CreatePageAnalysis(context.Background(), &edenweb.PageAnalysis{Title: "untitled"})
		require.Error(t, err)
		assert.Equal(t, edenweb.EINVALID, edenweb.ErrorCode(err))
	})
}

func TestAnalysisService_FindPageAnalyses(t *testing.T) {
	t.Parallel()

	t.Run("returns records in filename order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(mustOpenDB(t))
		ctx := context.Background()

		for _, name := range []string{"fbe010.htm", "fbe005.htm", "fbe007.htm"} {
			require.NoError(t, svc.CreatePageAnalysis(ctx, &edenweb.PageAnalysis{
				Filename: name,
				Title:    "Chapter",
				HTML:     "<p>text</p>",
			}))
		}

		got, err := svc.FindPageAnalyses(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "fbe005.htm", got[0].Filename)
		assert.Equal(t, "fbe007.htm", got[1].Filename)
		assert.Equal(t, "fbe010.htm", got[2].Filename)
	})

	t.Run("roundtrips every field", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(mustOpenDB(t))
		ctx := context.Background()

		p := &edenweb.PageAnalysis{
			Filename: "fbe005.htm",
			Title:    "Chapter I",
			Text:     "They went forth weeping.",
			HTML:     "<p>They went forth weeping.</p>\n",
		}
		require.NoError(t, svc.CreatePageAnalysis(ctx, p))

		got, err := svc.FindPageAnalyses(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, p.ID, got[0].ID)
		assert.Equal(t, p.Title, got[0].Title)
		assert.Equal(t, p.Text, got[0].Text)
		assert.Equal(t, p.HTML, got[0].HTML)
		assert.Equal(t, p.ContentHash, got[0].ContentHash)
		assert.Equal(t, p.AnalyzedAt.Unix(), got[0].AnalyzedAt.Unix())
	})

	t.Run("empty database yields no records", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewAnalysisService(mustOpenDB(t))
		got, err := svc.FindPageAnalyses(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
