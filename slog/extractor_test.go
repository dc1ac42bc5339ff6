package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/rplatt/edenweb"
	"github.com/rplatt/edenweb/mock"
	edenslog "github.com/rplatt/edenweb/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs successful extraction", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*edenweb.ExtractResult, error) {
				return &edenweb.ExtractResult{Title: "Chapter I", ContentHTML: "<p>text</p>\n"}, nil
			},
		}

		res, err := edenslog.NewLoggingExtractor(inner, logger).Extract("<html></html>")
		require.NoError(t, err)
		assert.Equal(t, "Chapter I", res.Title)
		assert.Contains(t, buf.String(), "extracted page")
		assert.Contains(t, buf.String(), "Chapter I")
	})

	t.Run("delegates and logs failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*edenweb.ExtractResult, error) {
				return nil, edenweb.Errorf(edenweb.EINVALID, "failed to parse HTML")
			},
		}

		_, err := edenslog.NewLoggingExtractor(inner, logger).Extract("garbage")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "extraction failed")
	})
}
