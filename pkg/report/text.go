package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"

	"github.com/user/fatsim/pkg/fat"
)

// TextFormatter renders fixed-width tables for terminals.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements Formatter.
func (f *TextFormatter) Format(snap fat.Snapshot, view View) (string, error) {
	var sb strings.Builder

	switch view {
	case ViewDirectory:
		f.writeDirectory(&sb, snap)
	case ViewTable:
		f.writeTable(&sb, snap)
	case ViewStats:
		f.writeStats(&sb, snap)
	case ViewAll:
		f.writeDirectory(&sb, snap)
		f.writeTable(&sb, snap)
		f.writeStats(&sb, snap)
	default:
		return "", fmt.Errorf("unknown view %d", view)
	}

	return sb.String(), nil
}

func (f *TextFormatter) writeDirectory(sb *strings.Builder, snap fat.Snapshot) {
	sb.WriteString("\n===== " + l10n.T("ROOT DIRECTORY") + " =====\n")
	fmt.Fprintf(sb, "%-20s%-10s%-10s\n", l10n.T("Name"), l10n.T("Size"), l10n.T("Start"))
	sb.WriteString(strings.Repeat("-", 43) + "\n")

	files := snap.Files()
	for _, e := range files {
		start := "-"
		if e.HasChain() {
			start = strconv.Itoa(e.StartCluster)
		}
		fmt.Fprintf(sb, "%-20s%-10d%-10s\n", e.Name, e.Size, start)
	}
	if len(files) == 0 {
		sb.WriteString(l10n.T("(empty directory)") + "\n")
	}

	sb.WriteString(strings.Repeat("=", 27) + "\n")
}

func (f *TextFormatter) writeTable(sb *strings.Builder, snap fat.Snapshot) {
	sb.WriteString("\n" + l10n.T("FAT TABLE") + "\n")
	fmt.Fprintf(sb, "%-10s| %-7s| %s\n", l10n.T("Cluster"), l10n.T("Value"), l10n.T("State / Pointer"))
	sb.WriteString(strings.Repeat("-", 54) + "\n")

	for i, c := range snap.Table {
		fmt.Fprintf(sb, "%-10d| %-7s| %s\n", i, rawValue(c), describe(c))
	}

	sb.WriteString(strings.Repeat("=", 54) + "\n")
}

func (f *TextFormatter) writeStats(sb *strings.Builder, snap fat.Snapshot) {
	s := snap.Stats
	sb.WriteString("\n===== " + l10n.T("STATISTICS") + " =====\n")
	sb.WriteString(l10n.F("Total clusters: %d", s.Total) + "\n")
	sb.WriteString(l10n.F("Free clusters: %d", s.Free) + "\n")
	sb.WriteString(l10n.F("Used clusters: %d", s.Used) + "\n")
	sb.WriteString(l10n.F("Free space: %d bytes", s.FreeBytes) + "\n")
	sb.WriteString(l10n.F("Used space: %d bytes", s.UsedBytes) + "\n")
	sb.WriteString(strings.Repeat("=", 24) + "\n")
}

// rawValue is the classic on-disk encoding: 0 free, -1 end of chain,
// otherwise the successor index.
func rawValue(c fat.Cluster) string {
	switch c.State {
	case fat.StateFree:
		return "0"
	case fat.StateEndOfChain:
		return "-1"
	default:
		return strconv.Itoa(c.Next)
	}
}

func describe(c fat.Cluster) string {
	switch c.State {
	case fat.StateFree:
		return l10n.T("FREE")
	case fat.StateEndOfChain:
		return l10n.T("END OF FILE (EOF)")
	default:
		return l10n.F("NEXT CLUSTER -> %d", c.Next)
	}
}
