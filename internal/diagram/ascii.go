package diagram

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/wellvol/internal/well"
)

// DefaultRows is the height of the ASCII schematic
const DefaultRows = 24

// Wall characters
const (
	casingWall   = '│'
	excludedWall = '╎'
	openHoleWall = '┊'
	stringWall   = '║'
	poiFill      = '┄'
)

type column struct {
	left, right int
}

// DrawASCIIWell draws the well as concentric walls against depth. Each
// distinct outer diameter gets its own pair of columns, widest outermost,
// with the inner string innermost. Shoes and the point of interest are
// annotated on the right.
func DrawASCIIWell(res *well.Result, rows int) string {
	var sb strings.Builder

	bottom := res.WellBottom
	if res.InnerString != nil {
		bottom = math.Max(bottom, res.InnerString.Shoe)
	}
	if bottom <= 0 || len(res.CasingsToDraw) == 0 {
		sb.WriteString("\n  (nothing to draw)\n")
		return sb.String()
	}
	if rows < 4 {
		rows = DefaultRows
	}

	var walls []well.DrawItem
	for _, item := range res.CasingsToDraw {
		if !item.Role.IsInnerString() {
			walls = append(walls, item)
		}
	}
	var sections []well.StringSection
	if res.InnerString != nil {
		sections = res.InnerString.Sections
	}

	ranks := odRanks(walls)
	levels := len(ranks)
	if len(sections) > 0 {
		levels++
	}
	width := 4*levels + 3
	col := func(rank int) column {
		return column{left: 2 * rank, right: width - 1 - 2*rank}
	}
	stringCol := col(levels - 1)

	sb.WriteString("\n")
	sb.WriteString("  WELL SCHEMATIC\n")
	sb.WriteString("  ──────────────\n\n")
	sb.WriteString(fmt.Sprintf("  %9s  %s\n", "0 m", strings.Repeat("▄", width)))

	step := bottom / float64(rows)
	for i := 0; i < rows; i++ {
		start := step * float64(i)
		end := step * float64(i+1)
		line := []rune(strings.Repeat(" ", width))
		var notes []string

		for _, item := range walls {
			if item.PrevDepth >= end || item.Depth <= start {
				continue
			}
			ch := casingWall
			switch {
			case item.Role == well.OpenHole:
				ch = openHoleWall
			case item.Excluded:
				ch = excludedWall
			}
			c := col(ranks[odKey(item.OD)])
			line[c.left], line[c.right] = ch, ch
			if item.Depth <= end && item.Role != well.OpenHole {
				notes = append(notes, fmt.Sprintf("%s shoe %.1f m", itemName(item.Role, item.Index), item.Depth))
			}
		}

		for k, sec := range sections {
			if sec.Top >= end || sec.Depth <= start {
				continue
			}
			line[stringCol.left], line[stringCol.right] = stringWall, stringWall
			if sec.Depth <= end {
				notes = append(notes, fmt.Sprintf("%s %.1f m", sectionName(res.InnerString.Kind, sec, k), sec.Depth))
			}
		}

		if res.Plug != nil && inRow(res.Plug.Depth, start, end, i == rows-1) {
			for j, r := range line {
				if r == ' ' {
					line[j] = poiFill
				}
			}
			notes = append(notes, fmt.Sprintf("◄─ POI %.1f m", res.Plug.Depth))
		}

		label := ""
		if i%6 == 0 && i > 0 {
			label = fmt.Sprintf("%.0f m", start)
		}
		sb.WriteString(fmt.Sprintf("  %9s  %s", label, string(line)))
		if len(notes) > 0 {
			sb.WriteString("  " + strings.Join(notes, ", "))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  %9s  %s\n", fmt.Sprintf("%.0f m", bottom), strings.Repeat("▀", width)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  │ = Casing or liner wall\n")
	sb.WriteString("  ╎ = Excluded from volume\n")
	sb.WriteString("  ┊ = Open hole\n")
	if len(sections) > 0 {
		if res.InnerString.Kind == well.ModeDrillPipe {
			sb.WriteString("  ║ = Drill pipe\n")
		} else {
			sb.WriteString("  ║ = Upper completion tubing\n")
		}
	}
	if res.Plug != nil {
		sb.WriteString("  ┄ = Point of interest\n")
	}

	return sb.String()
}

func inRow(d, start, end float64, last bool) bool {
	return d >= start && (d < end || (last && d <= end))
}

// odKey merges diameters that only differ by float noise
func odKey(od float64) float64 {
	return math.Round(od*1000) / 1000
}

// odRanks maps each distinct OD to its column, widest first
func odRanks(items []well.DrawItem) map[float64]int {
	seen := map[float64]bool{}
	var ods []float64
	for _, item := range items {
		k := odKey(item.OD)
		if !seen[k] {
			seen[k] = true
			ods = append(ods, k)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ods)))

	ranks := make(map[float64]int, len(ods))
	for i, od := range ods {
		ranks[od] = i
	}
	return ranks
}

func itemName(role well.Role, index int) string {
	if role == well.UpperCompletion {
		return fmt.Sprintf("%s #%d", role.Title(), index+1)
	}
	return role.Title()
}

func sectionName(kind well.StringMode, sec well.StringSection, k int) string {
	if kind == well.ModeDrillPipe {
		if sec.Label != "" {
			return "DP " + sec.Label
		}
		return fmt.Sprintf("DP #%d", k+1)
	}
	return itemName(well.UpperCompletion, sec.Index)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
