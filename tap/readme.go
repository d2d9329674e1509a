package tap

import (
	"fmt"
	"strings"

	"github.com/solo-io/homebrew-releaser/releaser/releaser_types"
)

// RewriteProjectTable updates the tap README's project table with the
// formula's current description and version. Within the first table in the
// document, the row leading with the formula token is replaced; if no row
// matches, a new one is appended to that table. Returns the updated content
// and whether anything changed. READMEs without a table are left untouched.
func RewriteProjectTable(content string, artifact *releaser_types.FormulaArtifact) (string, bool) {
	row := fmt.Sprintf("| %s | %s | %s |", artifact.FormulaName, artifact.Description, artifact.Version)

	lines := strings.Split(content, "\n")

	inTable := false
	firstTableEnd := -1
	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "|") {
			if inTable && firstTableEnd == -1 {
				firstTableEnd = i
			}
			inTable = false
			continue
		}

		if isSeparatorRow(line) {
			// a separator only opens the table that follows the first header
			if firstTableEnd == -1 {
				inTable = true
			}
			continue
		}
		if !inTable {
			continue
		}

		if firstCell(line) == artifact.FormulaName {
			if line == row {
				return content, false
			}
			lines[i] = row
			return strings.Join(lines, "\n"), true
		}
	}
	if inTable && firstTableEnd == -1 {
		firstTableEnd = len(lines)
	}

	if firstTableEnd == -1 {
		return content, false
	}

	withRow := append(lines[:firstTableEnd:firstTableEnd], append([]string{row}, lines[firstTableEnd:]...)...)
	return strings.Join(withRow, "\n"), true
}

func isSeparatorRow(line string) bool {
	trimmed := strings.Trim(strings.TrimSpace(line), "|")
	if trimmed == "" {
		return false
	}
	for _, cell := range strings.Split(trimmed, "|") {
		cell = strings.TrimSpace(cell)
		if cell == "" || strings.Trim(cell, "-:") != "" {
			return false
		}
	}
	return true
}

func firstCell(line string) string {
	cells := strings.Split(strings.TrimSpace(line), "|")
	if len(cells) < 2 {
		return ""
	}
	return strings.TrimSpace(cells[1])
}
