package web

import (
	"errors"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/etim-tools/bmecat-xchange/internal/convert"
	"github.com/etim-tools/bmecat-xchange/internal/logging"
	"github.com/etim-tools/bmecat-xchange/internal/xchange"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>BMEcat to xChange Converter</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 4rem auto; }
form { border: 1px solid #ccc; padding: 2rem; border-radius: 6px; }
</style>
</head>
<body>
<h1>BMEcat to xChange Converter</h1>
<p>Upload a BMEcat XML catalog to convert it to ETIM xChange JSON.</p>
<form action="/convert" method="post" enctype="multipart/form-data">
<input type="file" name="file" accept=".xml" required>
<button type="submit">Convert</button>
</form>
</body>
</html>
`))

// handleIndex serves the upload page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, nil); err != nil {
		logging.FromContext(r.Context()).Error("render index", "error", err)
	}
}

// handleHealth reports liveness plus the conversion limiter state.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":      "ok",
		"conversions": s.limiter.Status(),
	})
}

// handleConvert accepts a BMEcat XML upload, converts it, and responds
// with the xChange JSON document as a file download.
//
// The upload is spooled to a temp file first: the XML parser wants a
// whole document anyway, and the multipart reader should be drained
// before the long-running conversion starts.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xml") {
		writeError(w, http.StatusBadRequest, "only .xml files are accepted")
		return
	}

	tempPath, err := spoolUpload(s.cfg.Convert.TempDir, file)
	if err != nil {
		logger.Error("spool upload", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer os.Remove(tempPath)

	// Conversions are memory-heavy; wait for a slot or turn the client
	// away.
	if err := s.limiter.Acquire(r.Context()); err != nil {
		if errors.Is(err, convert.ErrTooManyConversions) {
			w.Header().Set("Retry-After", "30")
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeError(w, http.StatusRequestTimeout, "request cancelled")
		return
	}
	defer s.limiter.Release()

	logger.Info("conversion started", "catalog", header.Filename, "size", header.Size)

	doc, err := convert.Convert(tempPath, logger)
	if err != nil {
		logger.Error("conversion failed", "catalog", header.Filename, "error", err)
		writeError(w, http.StatusUnprocessableEntity, "conversion failed")
		return
	}

	tree, err := xchange.Tree(doc)
	if err != nil {
		logger.Error("document encoding failed", "error", err)
		writeError(w, http.StatusInternalServerError, "conversion failed")
		return
	}

	encoded, err := xchange.Encode(xchange.Prune(tree))
	if err != nil {
		logger.Error("document encoding failed", "error", err)
		writeError(w, http.StatusInternalServerError, "conversion failed")
		return
	}

	// Validation is advisory: log violations, deliver the document anyway.
	if s.validator != nil {
		violations, err := s.validator.Validate(encoded)
		if err != nil {
			logger.Error("schema validation errored", "error", err)
		}
		for _, v := range violations {
			logger.Warn("schema violation", "catalog", header.Filename, "violation", v)
		}
	}

	logger.Info("conversion completed", "catalog", header.Filename, "bytes", len(encoded))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+outputName(header.Filename)+`"`)
	w.Write(encoded)
}

// spoolUpload copies the uploaded stream to a uniquely named temp file and
// returns its path. The caller removes the file when done.
func spoolUpload(dir string, src io.Reader) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, uuid.NewString()+".xml")

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// outputName derives the download filename from the uploaded one. The
// result goes into a quoted Content-Disposition parameter, so quotes,
// backslashes, and control characters are stripped.
func outputName(uploaded string) string {
	base := filepath.Base(uploaded)
	base = strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < 0x20 {
			return -1
		}
		return r
	}, base)
	if base == "." || base == "/" || base == "" {
		return "catalog.json"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
