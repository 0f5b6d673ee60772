package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func TestCheckHealthyTable(t *testing.T) {
	s := newTestSynchronizer()
	doc, err := s.Sync("# LeetCode Solutions\n\n", twoSum("python", "a/solution.py"))
	assert.NoError(t, err)
	doc, err = s.Sync(doc, types.Submission{ProblemID: 2, Title: "Add Two Numbers", Slug: "add-two-numbers", Language: "go", SolutionPath: "b/solution.go", Tags: "Math", Difficulty: "Medium"})
	assert.NoError(t, err)

	r := s.Check(doc)
	assert.True(t, r.Found)
	assert.True(t, r.DividerOK)
	assert.Equal(t, 3, r.HeaderLine)
	assert.Equal(t, 2, r.Rows)
	assert.Equal(t, 2, r.MarkdownRows)
	assert.True(t, r.OK())
}

func TestCheckAbsentTable(t *testing.T) {
	r := newTestSynchronizer().Check("# Just a title\n")
	assert.False(t, r.Found)
	assert.Equal(t, -1, r.MarkdownRows)
	assert.False(t, r.OK())
}

func TestCheckReportsProblems(t *testing.T) {
	doc := types.TableHeader + "\n" + types.TableDivider + "\n" +
		"| 0002 | [B](u) | - | t | Easy |\n" +
		"| abc | [Bad](u) | - | t | Easy |\n" +
		"| 0001 | [A](u) | - | t | Easy |\n" +
		"| 0002 | [B again](u) | - | t | Easy |\n"

	r := newTestSynchronizer().Check(doc)
	assert.True(t, r.Found)
	assert.True(t, r.DividerOK)
	assert.Equal(t, 3, r.Rows)
	assert.Equal(t, []int{4}, r.Skipped)
	assert.Equal(t, []uint{2}, r.Duplicates)
	assert.True(t, r.Unsorted)
	assert.Equal(t, 4, r.MarkdownRows)
	assert.False(t, r.OK())
}

func TestCheckMalformedDivider(t *testing.T) {
	doc := types.TableHeader + "\n| 0007 | [Old](u) | - | t | Easy |\n"
	r := newTestSynchronizer().Check(doc)
	assert.True(t, r.Found)
	assert.False(t, r.DividerOK)
	assert.Equal(t, -1, r.MarkdownRows)
	assert.False(t, r.OK())
}
