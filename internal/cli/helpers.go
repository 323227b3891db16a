package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"tikang-admin/internal/models"
	"tikang-admin/internal/service"
)

// StdinConfirmer asks y/n questions on the terminal.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func NewStdinConfirmer() *StdinConfirmer {
	return &StdinConfirmer{In: os.Stdin, Out: os.Stderr}
}

func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.Out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

var _ service.Confirmer = (*StdinConfirmer)(nil)

// table prints rows in aligned columns on stdout.
func table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func formatMoney(m models.Money) string {
	return fmt.Sprintf("%.2f", float64(m))
}

func formatTime(t models.APITime) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func formatDate(t models.APITime) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func yesNo(f models.Flag) string {
	if bool(f) {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
