package main

import (
	"fleet-console/internal/domain"
	"fleet-console/internal/services"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// printTable writes tab-aligned columns, one row per line.
func printTable(w io.Writer, t domain.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// printNotice writes a notice on its own line, if there is one.
func printNotice(w io.Writer, n services.Notice) {
	if n.IsZero() {
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", n.Kind, n.Text)
}
