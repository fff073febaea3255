package storage

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"coffee-van/internal/codec"
	"coffee-van/internal/model"

	"github.com/rs/zerolog"
)

const (
	// cancelCheckInterval is how many lines are processed between context checks.
	cancelCheckInterval = 1000

	readBufferSize = 64 * 1024

	// maxLineSize bounds a single line. Longer lines are rejected and skipped.
	maxLineSize = 1024 * 1024

	dataFileMode = 0o644
)

// fileStorage implements Service on top of a local text file.
// Paths ending in ".gz" are gzip-compressed.
type fileStorage struct {
	path   string
	codec  *codec.Codec
	logger zerolog.Logger
}

// NewFileService creates a file-backed storage service.
func NewFileService(path string, c *codec.Codec, logger zerolog.Logger) Service {
	return &fileStorage{
		path:   path,
		codec:  c,
		logger: logger.With().Str("component", "storage").Str("file", path).Logger(),
	}
}

// Path returns the data file location.
func (s *fileStorage) Path() string {
	return s.path
}

func (s *fileStorage) compressed() bool {
	return strings.HasSuffix(s.path, ".gz")
}

// Load reads the data file and decodes each line. Lines that cannot be
// decoded, blank ones included, are reported to the codec's sink and skipped.
func (s *fileStorage) Load(ctx context.Context) ([]model.Product, error) {
	s.logger.Info().Msg("loading products")

	file, err := os.Open(s.path)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to open data file")
		return nil, fmt.Errorf("failed to open data file %s: %w", s.path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if s.compressed() {
		gzipReader, err := gzip.NewReader(file)
		if errors.Is(err, io.EOF) {
			s.logger.Info().Msg("data file is empty")
			return nil, nil
		}
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to create gzip reader")
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", s.path, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	reader := bufio.NewReaderSize(r, readBufferSize)

	var products []model.Product
	lineCount, skipped := 0, 0
	for {
		if lineCount%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				s.logger.Warn().Msg("loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}

		line, tooLong, err := readLine(reader, maxLineSize)
		if errors.Is(err, io.EOF) && line == "" && !tooLong {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			s.logger.Error().Err(err).Msg("error reading data file")
			return nil, fmt.Errorf("error reading data file %s: %w", s.path, err)
		}
		lineCount++

		if tooLong {
			// Only the first maxLineSize bytes were kept.
			s.codec.Reject(line, fmt.Errorf("%w: more than %d bytes", codec.ErrLineTooLong, maxLineSize))
			skipped++
		} else if p, decodeErr := s.codec.Decode(line); decodeErr != nil {
			// Already reported to the diagnostic sink.
			skipped++
		} else {
			products = append(products, p)
		}

		if err != nil {
			break
		}
	}

	s.logger.Info().
		Int("lines", lineCount).
		Int("products_loaded", len(products)).
		Int("lines_skipped", skipped).
		Msg("data file loaded")

	return products, nil
}

// Save encodes products and writes them to the data file.
func (s *fileStorage) Save(ctx context.Context, products []model.Product, appendMode bool) error {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		line, err := s.codec.Encode(p)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to encode product")
			return fmt.Errorf("failed to encode product: %w", err)
		}
		lines = append(lines, line)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	if appendMode {
		err = s.appendLines(lines)
	} else {
		err = s.replaceLines(lines)
	}
	if err != nil {
		s.logger.Error().Err(err).Bool("append", appendMode).Msg("failed to save products")
		return err
	}

	s.logger.Info().
		Int("products_saved", len(lines)).
		Bool("append", appendMode).
		Msg("data file saved")

	return nil
}

// appendLines appends to the data file, creating it when missing.
// Compressed files gain a new gzip member.
func (s *fileStorage) appendLines(lines []string) error {
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, dataFileMode)
	if err != nil {
		return fmt.Errorf("failed to open data file %s: %w", s.path, err)
	}

	if err := s.writeLines(file, lines); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close data file %s: %w", s.path, err)
	}
	return nil
}

// replaceLines atomically replaces the data file using the temp-file,
// fsync, rename pattern.
func (s *fileStorage) replaceLines(lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".coffee-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// CreateTemp uses 0600; keep the data file's permissions.
	mode := os.FileMode(dataFileMode)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set data file permissions: %w", err)
	}

	if err := s.writeLines(tmp, lines); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file %s: %w", s.path, err)
	}
	return nil
}

// readLine returns the next line without its line ending. A line longer than
// limit is cut to its first limit bytes and reported as tooLong; the rest of it
// is consumed. err is io.EOF when the input ends, possibly with a final line.
func readLine(r *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return string(buf), tooLong, err
		}
		if !tooLong {
			if room := limit - len(buf); len(chunk) > room {
				buf = append(buf, chunk[:room]...)
				tooLong = true
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func (s *fileStorage) writeLines(w io.Writer, lines []string) error {
	var gzipWriter *gzip.Writer
	if s.compressed() {
		gzipWriter = gzip.NewWriter(w)
		w = gzipWriter
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush data file: %w", err)
	}

	if gzipWriter != nil {
		if err := gzipWriter.Close(); err != nil {
			return fmt.Errorf("failed to finish gzip stream: %w", err)
		}
	}
	return nil
}
