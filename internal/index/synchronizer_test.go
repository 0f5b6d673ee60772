package index

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const twoSumRow = "| 0001 | [Two Sum](https://leetcode.com/problems/two-sum/) | [Python](./0001-two-sum/solution.py) | Array, Hash Table | Easy |"

func newTestSynchronizer() *Synchronizer {
	return NewSynchronizer(Options{})
}

func TestSyncEmptyDocument(t *testing.T) {
	s := newTestSynchronizer()

	got, err := s.Sync("", twoSum("python", "0001-two-sum/solution.py"))
	require.NoError(t, err)

	want := types.TableHeader + "\n" + types.TableDivider + "\n" + twoSumRow + "\n"
	assert.Equal(t, want, got)
}

func TestSyncSecondLanguage(t *testing.T) {
	s := newTestSynchronizer()

	doc, err := s.Sync("", twoSum("python", "0001-two-sum/solution.py"))
	require.NoError(t, err)
	doc, err = s.Sync(doc, twoSum("go", "0001-two-sum/solution.go"))
	require.NoError(t, err)

	assert.Contains(t, doc, "| [Python](./0001-two-sum/solution.py), [Go](./0001-two-sum/solution.go) |")

	rows := s.Rows(doc)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Solutions, 2)
}

func TestSyncResubmitSameLanguage(t *testing.T) {
	s := newTestSynchronizer()

	doc, _ := s.Sync("", twoSum("python", "0001-two-sum/solution.py"))
	doc, _ = s.Sync(doc, twoSum("go", "0001-two-sum/solution.go"))

	again, err := s.Sync(doc, twoSum("python", "0001-two-sum/solution.py"))
	require.NoError(t, err)
	assert.Equal(t, doc, again)

	rows := s.Rows(again)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Solutions, 2)
}

func TestSyncOrdersByID(t *testing.T) {
	s := newTestSynchronizer()
	sub := func(id uint, slug string) types.Submission {
		return types.Submission{
			ProblemID:    id,
			Title:        fmt.Sprintf("Problem %d", id),
			Slug:         slug,
			Language:     "python",
			SolutionPath: fmt.Sprintf("problemset/%s-%s/solution.py", types.FormatProblemID(id), slug),
			Tags:         "Tag",
			Difficulty:   "Medium",
		}
	}

	doc, err := s.Sync("", sub(233, "problem-233"))
	require.NoError(t, err)
	doc, err = s.Sync(doc, sub(3, "problem-3"))
	require.NoError(t, err)

	rows := s.Rows(doc)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(3), rows[0].ProblemID)
	assert.Equal(t, uint(233), rows[1].ProblemID)
	assert.Less(t, strings.Index(doc, "| 0003 |"), strings.Index(doc, "| 0233 |"))
}

func TestSyncHeaderWithoutDivider(t *testing.T) {
	s := newTestSynchronizer()
	old := "| 0007 | [Old](https://x/old/) | - | t | Easy |"
	doc := types.TableHeader + "\n" + old + "\n"

	lines := SplitLines(doc)
	assert.Empty(t, ParseRows(lines, Locate(lines, types.TableHeader)))

	got, err := s.Sync(doc, twoSum("python", "0001-two-sum/solution.py"))
	require.NoError(t, err)
	assert.Equal(t, types.TableHeader+"\n"+old+"\n"+twoSumRow+"\n", got)
}

func TestSyncHeaderOnly(t *testing.T) {
	s := newTestSynchronizer()
	sub := twoSum("go", "a.go")

	for _, doc := range []string{types.TableHeader, types.TableHeader + "\n", types.TableHeader + "\n\n## Notes\n"} {
		once, err := s.Sync(doc, sub)
		require.NoError(t, err)
		twice, err := s.Sync(once, sub)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "%q", doc)
		assert.Contains(t, once, types.TableHeader+"\n"+types.TableDivider+"\n| 0001 |", "%q", doc)
		assert.Len(t, s.Rows(twice), 1, "%q", doc)
	}
}

func TestSyncPreservesSurroundingDocument(t *testing.T) {
	s := newTestSynchronizer()
	doc := "# LeetCode Solutions\n\nMy notes.\n\n" +
		types.TableHeader + "\n" + types.TableDivider + "\n" +
		"| 0009 | [Palindrome Number](https://leetcode.com/problems/palindrome-number/) | [Java](./p/0009/solution.java) | Math | Easy |\n" +
		"\n## Footer\n\n- item\n"

	got, err := s.Sync(doc, twoSum("python", "p/0001/solution.py"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "# LeetCode Solutions\n\nMy notes.\n\n"+types.TableHeader+"\n"+types.TableDivider+"\n| 0001 |"))
	assert.True(t, strings.HasSuffix(got, "| Math | Easy |\n\n## Footer\n\n- item\n"))
	assert.Equal(t, 1, strings.Count(got, types.TableHeader))
}

func TestSyncIdempotent(t *testing.T) {
	s := newTestSynchronizer()
	docs := []string{
		"",
		"# Solutions\n",
		"# Solutions\n\n" + types.TableHeader + "\n" + types.TableDivider + "\n" + twoSumRow + "\n\nfooter",
	}
	subs := []types.Submission{
		twoSum("python", "0001-two-sum/solution.py"),
		twoSum("cpp", "0001-two-sum/solution.cpp"),
		{ProblemID: 15, Title: "3Sum", Slug: "3sum", Language: "java", SolutionPath: "0015-3sum/solution.java", Tags: "Array", Difficulty: "Medium"},
	}

	for i, doc := range docs {
		for _, sub := range subs {
			t.Run(fmt.Sprintf("doc%d/%s/%d", i, sub.Language, sub.ProblemID), func(t *testing.T) {
				once, err := s.Sync(doc, sub)
				require.NoError(t, err)
				twice, err := s.Sync(once, sub)
				require.NoError(t, err)
				assert.Equal(t, once, twice)
			})
		}
	}
}

func TestSyncRoundTrip(t *testing.T) {
	s := newTestSynchronizer()
	subs := []types.Submission{
		twoSum("python", "a/solution.py"),
		{ProblemID: 233, Title: "Number of Digit One", Slug: "number-of-digit-one", Language: "go", SolutionPath: "b/solution.go", Tags: "Math, Recursion", Difficulty: "Hard"},
		twoSum("cpp", "a/solution.cpp"),
		{ProblemID: 10010, Title: "Wide", Language: "java", SolutionPath: "c/solution.java", Tags: "", Difficulty: ""},
	}

	var rows []types.Row
	doc := "# Index\n"
	for _, sub := range subs {
		rows = Merge(rows, sub)
		var err error
		doc, err = s.Sync(doc, sub)
		require.NoError(t, err)
	}

	lines := SplitLines(doc)
	parsed := ParseRows(lines, Locate(lines, types.TableHeader))
	assert.Equal(t, rows, parsed)

	rerendered := Render(lines, Locate(lines, types.TableHeader), parsed, HeaderLines)
	assert.Equal(t, doc, JoinLines(rerendered))
}

func TestSyncRowCountGrowsByOneForNewID(t *testing.T) {
	s := newTestSynchronizer()
	doc := ""
	for i := uint(1); i <= 5; i++ {
		before := len(s.Rows(doc))
		var err error
		doc, err = s.Sync(doc, types.Submission{ProblemID: i * 7, Title: "P", Language: "go", SolutionPath: "x.go"})
		require.NoError(t, err)
		assert.Equal(t, before+1, len(s.Rows(doc)))
	}
}

func TestSyncRejectsInvalidSubmission(t *testing.T) {
	s := newTestSynchronizer()
	_, err := s.Sync("", types.Submission{ProblemID: 1})
	require.Error(t, err)
	assert.Equal(t, FailureInvalid, FailureOf(err))
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation))
}

func TestSyncUsesConfiguredBaseURL(t *testing.T) {
	s := NewSynchronizer(Options{ProblemBaseURL: "https://leetcode.cn/problems/"})
	doc, err := s.Sync("", twoSum("python", "a.py"))
	require.NoError(t, err)
	assert.Contains(t, doc, "[Two Sum](https://leetcode.cn/problems/two-sum/)")
}

func TestBootstrap(t *testing.T) {
	s := newTestSynchronizer()

	got := s.Bootstrap("# LeetCode Solutions\n\n")
	assert.Equal(t, "# LeetCode Solutions\n\n"+types.TableHeader+"\n"+types.TableDivider+"\n", got)
	assert.Equal(t, got, s.Bootstrap(got), "bootstrap is a no-op once the table exists")
}

func TestSyncFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# LeetCode Solutions\n\n"), 0o600))

	s := NewSynchronizer(Options{Lock: true})

	res, err := s.SyncFile(path, twoSum("python", "problemset/0001-two-sum/solution.py"))
	require.NoError(t, err)
	assert.Equal(t, OutcomePersisted, res.Outcome)
	assert.True(t, res.Bootstrapped)
	assert.Equal(t, 1, res.Rows)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Python](./problemset/0001-two-sum/solution.py)")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "file mode is preserved")

	assert.Equal(t, Digest(string(data)), res.Digest)

	res, err = s.SyncFile(path, twoSum("python", "problemset/0001-two-sum/solution.py"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, res.Outcome)
	assert.False(t, res.Bootstrapped)
	assert.Equal(t, Digest(string(data)), res.Digest)
}

func TestSyncFileMissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	s := newTestSynchronizer()

	res, err := s.SyncFile(path, twoSum("go", "a/solution.go"))
	require.NoError(t, err)
	assert.Equal(t, OutcomePersisted, res.Outcome)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), types.TableHeader+"\n"))
}

func TestSyncFileReadFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := newTestSynchronizer()
	_, err := s.SyncFile(filepath.Join(blocker, "README.md"), twoSum("go", "a.go"))
	require.Error(t, err)
	assert.Equal(t, FailureRead, FailureOf(err))
}

func TestSyncFileInvalidSubmission(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	s := newTestSynchronizer()

	_, err := s.SyncFile(path, types.Submission{ProblemID: 1, Title: "T"})
	require.Error(t, err)
	assert.Equal(t, FailureInvalid, FailureOf(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing is written for an invalid submission")
}

func TestSyncFileConcurrentWithLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	s := NewSynchronizer(Options{Lock: true})

	const n = 12
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, err := s.SyncFile(path, types.Submission{
				ProblemID:    id,
				Title:        fmt.Sprintf("P%d", id),
				Language:     "go",
				SolutionPath: fmt.Sprintf("p/%d/solution.go", id),
			})
			errs <- err
		}(uint(i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Len(t, s.Rows(text), n)
	assert.Equal(t, 1, strings.Count(text, types.TableHeader))
}

func TestBootstrapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("# LeetCode Solutions\n\n"), 0o644))
	s := newTestSynchronizer()

	res, err := s.BootstrapFile(path)
	require.NoError(t, err)
	assert.True(t, res.Bootstrapped)
	assert.Equal(t, OutcomePersisted, res.Outcome)

	res, err = s.BootstrapFile(path)
	require.NoError(t, err)
	assert.False(t, res.Bootstrapped)
	assert.Equal(t, OutcomeUnchanged, res.Outcome)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "persisted", OutcomePersisted.String())
	assert.Equal(t, "unchanged", OutcomeUnchanged.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}

func TestSyncFileWriteFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs symlinks")
	}
	dir := t.TempDir()
	// The document's folder is a dangling symlink: reading finds nothing,
	// creating the folder for the write fails.
	folder := filepath.Join(dir, "docs")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), folder))

	s := newTestSynchronizer()
	_, err := s.SyncFile(filepath.Join(folder, "README.md"), twoSum("go", "a.go"))
	require.Error(t, err)
	assert.Equal(t, FailureWrite, FailureOf(err))
}
