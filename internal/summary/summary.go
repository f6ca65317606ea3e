package summary

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"tasnim.dev/hwc-report/internal/hwc/cce"
	"tasnim.dev/hwc-report/internal/hwc/ecs"
	"tasnim.dev/hwc-report/internal/theme"
)

// Clusters prints a table of the clusters written to path.
func Clusters(w io.Writer, path string, records []cce.ClusterRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Name, theme.RenderStatus(r.Status), r.Version, r.Type, r.Flavor})
	}
	return render(w, fmt.Sprintf("%d CCE %s → %s", len(records), plural(len(records), "cluster"), path),
		[]string{"NAME", "STATUS", "VERSION", "TYPE", "FLAVOR"}, rows)
}

// Instances prints a table of the servers written to path.
func Instances(w io.Writer, path string, records []ecs.InstanceRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Summary.Name,
			theme.RenderStatus(r.Summary.Status),
			r.Summary.Flavor,
			addresses(r.NetworkInterfaces),
		})
	}
	return render(w, fmt.Sprintf("%d ECS %s → %s", len(records), plural(len(records), "server"), path),
		[]string{"NAME", "STATUS", "FLAVOR", "ADDRESSES"}, rows)
}

func render(w io.Writer, title string, headers []string, rows [][]string) error {
	if _, err := fmt.Fprintln(w, theme.TitleStyle.Render(title)); err != nil {
		return err
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, theme.MutedStyle.Render("(none)"))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.HeaderStyle
			}
			return theme.CellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func addresses(ifaces []ecs.NetworkInterface) string {
	if len(ifaces) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ifaces))
	for _, ni := range ifaces {
		parts = append(parts, fmt.Sprintf("%s (%s)", ni.Address, ni.Type))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
