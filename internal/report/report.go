// Package report renders decoded sessions as a text table for the
// operator and the loot file.
package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/securecrt-dump/models"
)

// Title heads the rendered table.
const Title = "SecureCRT Sessions"

// LootName is the base name the rendered table is stored under.
const LootName = "securecrt_sessions.txt"

var columns = []string{"Filename", "Hostname", "Port", "Username", "Password"}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Render returns the table of records in the given order. Absent fields
// render as empty cells; an unknown port (0) renders empty too.
func Render(records []models.SessionRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.UnitName,
			r.HostnameOrEmpty(),
			portCell(r.Port),
			r.UsernameOrEmpty(),
			r.PasswordOrEmpty(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(columns...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(Title), t.String()) + "\n"
}

func portCell(port int) string {
	if port == 0 {
		return ""
	}
	return strconv.Itoa(port)
}
