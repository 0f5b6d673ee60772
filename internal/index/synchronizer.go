package index

import (
	"github.com/mesh-intelligence/lantern/internal/logging"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// Outcome reports what a file synchronization did to the document.
type Outcome int

const (
	// OutcomePersisted means the document was rewritten.
	OutcomePersisted Outcome = iota
	// OutcomeUnchanged means the rendered document equalled the original
	// and nothing was written.
	OutcomeUnchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomePersisted:
		return "persisted"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Result describes a completed file synchronization.
type Result struct {
	Path         string
	Outcome      Outcome
	Bootstrapped bool
	Rows         int
	// Digest fingerprints the document as it is on disk afterwards.
	Digest string
}

// Options configures a Synchronizer.
type Options struct {
	// Header is the header/divider block; defaults to HeaderLines.
	Header []string

	// ProblemBaseURL builds canonical urls for submissions that only carry
	// a slug; defaults to types.DefaultProblemBaseURL.
	ProblemBaseURL string

	// Lock serialises file synchronizations with an OS lock.
	Lock bool

	Logger logging.Logger
}

// Synchronizer runs locate, parse, merge and render against a document.
// It holds no document state between calls.
type Synchronizer struct {
	header  []string
	baseURL string
	lock    bool
	logger  logging.Logger
}

// NewSynchronizer creates a Synchronizer from opts.
func NewSynchronizer(opts Options) *Synchronizer {
	header := opts.Header
	if len(header) == 0 {
		header = HeaderLines
	}
	baseURL := opts.ProblemBaseURL
	if baseURL == "" {
		baseURL = types.DefaultProblemBaseURL
	}
	return &Synchronizer{
		header:  header,
		baseURL: baseURL,
		lock:    opts.Lock,
		logger:  logging.OrNoOp(opts.Logger),
	}
}

// Sync merges sub into the index table of text and returns the new text.
// A document without the table gets one appended first.
func (s *Synchronizer) Sync(text string, sub types.Submission) (string, error) {
	lines, _, _, err := s.apply(SplitLines(text), sub)
	if err != nil {
		return "", err
	}
	return JoinLines(lines), nil
}

// Bootstrap returns text with an empty index table appended when none is
// present; otherwise text is returned unchanged.
func (s *Synchronizer) Bootstrap(text string) string {
	lines := SplitLines(text)
	if !Locate(lines, s.header[0]).Absent() {
		return text
	}
	return JoinLines(Render(lines, types.AbsentRegion, nil, s.header))
}

// Rows parses the index table of text. A document without the table has
// no rows.
func (s *Synchronizer) Rows(text string) []types.Row {
	lines := SplitLines(text)
	return ParseRows(lines, Locate(lines, s.header[0]))
}

// SyncFile merges sub into the document at path and persists it atomically.
// Read, lock and write failures are returned as tagged errors; see
// FailureOf. Nothing is retried.
func (s *Synchronizer) SyncFile(path string, sub types.Submission) (Result, error) {
	if err := sub.Validate(); err != nil {
		return Result{Path: path}, wrapValidationError(err)
	}

	var bootstrapped bool
	var rows int
	res, err := s.rewriteFile(path, func(lines []string) ([]string, error) {
		out, b, n, err := s.apply(lines, sub)
		bootstrapped, rows = b, n
		return out, err
	})
	res.Bootstrapped = bootstrapped
	res.Rows = rows
	if err != nil {
		s.logger.Error("index sync failed", "path", path, "problem_id", sub.ProblemID, "failure", string(FailureOf(err)), "error", err)
		return res, err
	}

	s.logger.Info("index synced",
		"path", path,
		"problem_id", sub.ProblemID,
		"language", sub.Label(),
		"outcome", res.Outcome.String(),
		"bootstrapped", bootstrapped,
		"rows", rows,
	)
	return res, nil
}

// BootstrapFile ensures the document at path carries the index table.
func (s *Synchronizer) BootstrapFile(path string) (Result, error) {
	var bootstrapped bool
	res, err := s.rewriteFile(path, func(lines []string) ([]string, error) {
		region := Locate(lines, s.header[0])
		if !region.Absent() {
			return lines, nil
		}
		bootstrapped = true
		return Render(lines, region, nil, s.header), nil
	})
	res.Bootstrapped = bootstrapped
	if err == nil && bootstrapped {
		s.logger.Info("index table inserted", "path", path)
	}
	return res, err
}

// apply runs the pipeline over lines. It reports whether the header had to
// be inserted and how many rows the table holds afterwards.
func (s *Synchronizer) apply(lines []string, sub types.Submission) ([]string, bool, int, error) {
	if err := sub.Validate(); err != nil {
		return nil, false, 0, wrapValidationError(err)
	}
	if sub.URL == "" {
		sub.URL = ProblemURL(s.baseURL, sub.Slug)
	}

	region := Locate(lines, s.header[0])
	bootstrapped := region.Absent()
	if bootstrapped {
		s.logger.Debug("index table absent, inserting header")
	} else if region.Start+1 >= len(lines) || lines[region.Start+1] != s.header[len(s.header)-1] {
		s.logger.Warn("index divider malformed, rows may be skipped", "line", region.Start+2)
	}

	existing := ParseRows(lines, region)
	merged := Merge(existing, sub)
	return Render(lines, region, merged, s.header), bootstrapped, len(merged), nil
}

// rewriteFile is the locked read-modify-write cycle shared by the file
// operations. The document is only written when fn changed it.
func (s *Synchronizer) rewriteFile(path string, fn func([]string) ([]string, error)) (Result, error) {
	res := Result{Path: path}

	if s.lock {
		l, err := Lock(path)
		if err != nil {
			return res, wrapLockError(err, path)
		}
		defer l.Unlock()
	}

	text, err := ReadDocument(path)
	if err != nil {
		return res, wrapReadError(err, path)
	}

	lines, err := fn(SplitLines(text))
	if err != nil {
		return res, err
	}

	updated := JoinLines(lines)
	res.Digest = Digest(updated)
	if updated == text {
		res.Outcome = OutcomeUnchanged
		return res, nil
	}
	if err := WriteDocument(path, updated); err != nil {
		return res, wrapWriteError(err, path)
	}
	res.Outcome = OutcomePersisted
	return res, nil
}
