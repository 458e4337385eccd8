package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/movie-quotes/internal/domain"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"quotes.json", FormatJSON, false},
		{"dir/quotes.yaml", FormatYAML, false},
		{"quotes.yml", FormatYAML, false},
		{"quotes.csv", "", true},
		{"quotes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileSource_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"tazza.json": {Data: []byte(`[
			{"quote": "싸늘하다. 가슴에 비수가 날아와 꽂힌다.", "author": "고니"},
			{"quote": "  나 이대 나온 여자야  ", "author": "정마담"}
		]`)},
		"mixed.yaml": {Data: []byte(`
- quote: 누구냐 넌
  author: 오대수
  movie: old-boy
- quote: 드루와
  author: 정청
`)},
		"empty.yaml":     {Data: []byte("")},
		"empty.json":     {Data: []byte("[]")},
		"unknown.json":   {Data: []byte(`[{"quote": "q", "author": "a", "year": 2006}]`)},
		"unknown.yaml":   {Data: []byte("- quote: q\n  author: a\n  year: 2006\n")},
		"malformed.json": {Data: []byte(`[{"quote": "q", "author": `)},
		"object.json":    {Data: []byte(`{"quote": "q", "author": "a"}`)},
		"noauthor.json":  {Data: []byte(`[{"quote": "a"}, {"quote": "b"}]`)},
		"blank.json":     {Data: []byte(`[{"quote": "ok", "author": "a"}, {"quote": "   ", "author": "b"}]`)},
		"badmovie.yaml":  {Data: []byte("- quote: q\n  author: a\n  movie: parasite\n")},
		"twodocs.yaml":   {Data: []byte("- quote: A\n  author: X\n---\n- quote: B\n  author: Y\n")},
		"twoarrays.json": {Data: []byte(`[{"quote": "A", "author": "X"}] [{"quote": "B", "author": "Y"}]`)},
		"garbage.json":   {Data: []byte(`[{"quote": "A", "author": "X"}] garbage`)},
	}

	t.Run("json with default movie", func(t *testing.T) {
		src, err := NewFileSource("tazza", fsys, "tazza.json", "the-war-of-flower")
		require.NoError(t, err)
		assert.Equal(t, "tazza", src.Name())

		items, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []domain.QuoteItem{
			{Quote: "싸늘하다. 가슴에 비수가 날아와 꽂힌다.", Author: "고니", Movie: "타짜"},
			{Quote: "나 이대 나온 여자야", Author: "정마담", Movie: "타짜"},
		}, items)
	})

	t.Run("record movie overrides default", func(t *testing.T) {
		src, err := NewFileSource("mixed", fsys, "mixed.yaml", "new-world")
		require.NoError(t, err)

		items, err := src.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "올드보이", items[0].Movie)
		assert.Equal(t, "신세계", items[1].Movie)
	})

	t.Run("no default leaves movie empty", func(t *testing.T) {
		src, err := NewFileSource("mixed", fsys, "mixed.yaml", "")
		require.NoError(t, err)

		items, err := src.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items[1].Movie)
	})

	failures := []struct {
		name      string
		path      string
		wantIndex int
		want      string
	}{
		{"missing file", "absent.json", -1, "open"},
		{"empty yaml", "empty.yaml", -1, "no records"},
		{"empty json array", "empty.json", -1, "no records"},
		{"unknown json field", "unknown.json", -1, "decode json"},
		{"unknown yaml field", "unknown.yaml", -1, "decode yaml"},
		{"malformed json", "malformed.json", -1, "decode json"},
		{"object instead of array", "object.json", -1, "decode json"},
		{"missing author", "noauthor.json", 0, "author is required"},
		{"blank quote", "blank.json", 1, "quote is required"},
		{"unknown record movie", "badmovie.yaml", 0, `unknown movie "parasite"`},
		{"second yaml document", "twodocs.yaml", -1, "trailing data"},
		{"second json array", "twoarrays.json", -1, "trailing data"},
		{"trailing garbage", "garbage.json", -1, "decode json"},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewFileSource(tt.name, fsys, tt.path, "")
			require.NoError(t, err)

			items, err := src.Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, items)
			assert.True(t, domain.IsCorpus(err))
			assert.Contains(t, err.Error(), tt.want)

			var corpusErr *domain.CorpusError
			require.ErrorAs(t, err, &corpusErr)
			assert.Equal(t, tt.name, corpusErr.Source)
			assert.Equal(t, tt.wantIndex, corpusErr.Record)
		})
	}
}

func TestNewFileSource_Errors(t *testing.T) {
	_, err := NewFileSource("csv", fstest.MapFS{}, "quotes.csv", "")
	require.Error(t, err)
	assert.True(t, domain.IsCorpus(err))

	_, err = NewFileSource("bad", fstest.MapFS{}, "quotes.json", "parasite")
	require.Error(t, err)
	assert.True(t, domain.IsCorpus(err))
	assert.True(t, domain.IsUnknownMovie(err))
}

func TestNewPathSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new-world.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"quote": "살려는 드릴게", "author": "이자성"}]`), 0o600))

	src, err := NewPathSource("new-world", path, "new-world")
	require.NoError(t, err)

	items, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.QuoteItem{{Quote: "살려는 드릴게", Author: "이자성", Movie: "신세계"}}, items)
}

func TestBundledCorpora(t *testing.T) {
	root := filepath.Join("..", "..", "..", "data", "quotes")

	tests := []struct {
		file  string
		movie string
	}{
		{"new-world.json", "new-world"},
		{"the-war-of-flower.json", "the-war-of-flower"},
		{"more.yaml", ""},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			src, err := NewPathSource(tt.file, filepath.Join(root, tt.file), tt.movie)
			require.NoError(t, err)

			items, err := src.Load(context.Background())
			require.NoError(t, err)
			assert.NotEmpty(t, items)

			for _, item := range items {
				assert.NotEmpty(t, item.Movie, "every bundled quote names its movie")
			}
		})
	}
}
