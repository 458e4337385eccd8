package corpus

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/movie-quotes/internal/domain"
	"github.com/jsamuelsen/movie-quotes/internal/platform/logging"
)

// FileSource reads a corpus file from a file system.
type FileSource struct {
	name   string
	fsys   fs.FS
	path   string
	format Format
	movie  string
}

// NewFileSource creates a source for path within fsys. movieSlug may be empty.
func NewFileSource(name string, fsys fs.FS, path, movieSlug string) (*FileSource, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, domain.NewCorpusError(name, "format", err)
	}

	title, err := resolveDefault(name, movieSlug)
	if err != nil {
		return nil, err
	}

	return &FileSource{
		name:   name,
		fsys:   fsys,
		path:   path,
		format: format,
		movie:  title,
	}, nil
}

// NewPathSource creates a FileSource for an OS path, absolute or relative to
// the working directory.
func NewPathSource(name, path, movieSlug string) (*FileSource, error) {
	dir, file := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}

	return NewFileSource(name, os.DirFS(dir), filepath.ToSlash(file), movieSlug)
}

// Name implements ports.CorpusSource.
func (s *FileSource) Name() string {
	return s.name
}

// Load implements ports.CorpusSource.
func (s *FileSource) Load(ctx context.Context) ([]domain.QuoteItem, error) {
	logger := logging.FromContext(ctx)
	logger.Log(ctx, logging.LevelTrace, "reading corpus file",
		slog.String("source", s.name),
		slog.String("path", s.path),
	)

	f, err := s.fsys.Open(s.path)
	if err != nil {
		return nil, domain.NewCorpusError(s.name, "open", err)
	}
	defer func() { _ = f.Close() }()

	records, err := decode(s.format, f)
	if err != nil {
		return nil, domain.NewCorpusError(s.name, "decode "+string(s.format), err)
	}

	return translate(s.name, s.movie, records)
}
