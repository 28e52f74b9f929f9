// Package export renders the site into a directory of static files.
package export

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/mrsuber/ResultInstitudeWeb/internal/components"
	"github.com/mrsuber/ResultInstitudeWeb/internal/site"
	"github.com/mrsuber/ResultInstitudeWeb/pkg/logger"
)

// File is one written output file.
type File struct {
	Path  string
	Bytes int64
}

type Options struct {
	OutDir string
	// Assets is copied under OutDir/static.
	Assets fs.FS
	Year   int
}

// Exporter writes the landing page and its assets.
type Exporter struct {
	holder *site.Holder
	log    *slog.Logger
}

func New(holder *site.Holder, log *slog.Logger) *Exporter {
	if log == nil {
		log = logger.Nop()
	}
	return &Exporter{holder: holder, log: log.With(logger.Scope("export"))}
}

// Run renders index.html without the live bridge and copies the assets.
// Paths in the result are relative to OutDir.
func (e *Exporter) Run(opts Options) ([]File, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", opts.OutDir, err)
	}

	snap := e.holder.Current()
	var buf bytes.Buffer
	page := components.Page{Site: snap.Site, Theme: snap.Theme, Year: opts.Year}
	if err := components.LandingPage(page).Render(&buf); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	var files []File
	index := filepath.Join(opts.OutDir, "index.html")
	if err := os.WriteFile(index, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", index, err)
	}
	files = append(files, File{Path: "index.html", Bytes: int64(buf.Len())})

	if opts.Assets != nil {
		assets, err := copyAssets(opts.Assets, filepath.Join(opts.OutDir, "static"))
		if err != nil {
			return nil, err
		}
		files = append(files, assets...)
	}

	e.log.Info("site exported",
		slog.String("dir", opts.OutDir),
		slog.String("theme", snap.Theme.Name),
		slog.Int("files", len(files)),
	)
	return files, nil
}

func copyAssets(src fs.FS, dst string) ([]File, error) {
	var files []File
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		n, err := copyFile(src, path, target)
		if err != nil {
			return fmt.Errorf("copy %s: %w", path, err)
		}
		files = append(files, File{Path: filepath.ToSlash(filepath.Join("static", path)), Bytes: n})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func copyFile(src fs.FS, path, target string) (int64, error) {
	in, err := src.Open(path)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// WriteSummary prints the written files as a table.
func WriteSummary(w io.Writer, files []File) error {
	table := tablewriter.NewWriter(w)
	table.Header("File", "Size")

	var total int64
	for _, f := range files {
		table.Append(f.Path, humanSize(f.Bytes))
		total += f.Bytes
	}
	table.Append(fmt.Sprintf("%d files", len(files)), humanSize(total))
	return table.Render()
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
