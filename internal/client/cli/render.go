package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
)

// listOptions are the key=value filters accepted by list commands, e.g.
// "tasks status=OPEN page=2".
type listOptions struct {
	page    models.PageQuery
	filters map[string]string
}

func parseListOptions(args []string, allowed ...string) (listOptions, error) {
	opts := listOptions{filters: map[string]string{}}
	known := map[string]bool{"page": true, "size": true}
	for _, k := range allowed {
		known[k] = true
	}

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || !known[key] {
			return opts, fmt.Errorf("unknown option %q (allowed: page, size, %s)", arg, strings.Join(allowed, ", "))
		}
		switch key {
		case "page", "size":
			n, err := strconv.Atoi(value)
			if err != nil {
				return opts, fmt.Errorf("%s must be a number", key)
			}
			if key == "page" {
				opts.page.Page = n
			} else {
				opts.page.Size = n
			}
		default:
			opts.filters[key] = value
		}
	}
	return opts, nil
}

func (o listOptions) upper(key string) string {
	return strings.ToUpper(o.filters[key])
}

// table writes tab-aligned rows.
type table struct {
	tw *tabwriter.Writer
}

func newTable(w io.Writer, header ...string) *table {
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	t.row(toAny(header)...)
	return t
}

func (t *table) row(cols ...any) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(t.tw, "\t")
		}
		fmt.Fprint(t.tw, c)
	}
	fmt.Fprintln(t.tw)
}

func (t *table) flush() {
	_ = t.tw.Flush()
}

func toAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

func pageFooter[T any](w io.Writer, p models.Page[T]) {
	fmt.Fprintf(w, "page %d/%d, %d total\n", p.Current, max(p.Pages, 1), p.Total)
}

// field prints one "label: value" line, skipping empty values.
func field(w io.Writer, label string, value any) {
	s := fmt.Sprint(value)
	if s == "" {
		return
	}
	fmt.Fprintf(w, "%-14s %s\n", label+":", s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func stockString(stock *int64) string {
	if stock == nil {
		return "unlimited"
	}
	return strconv.FormatInt(*stock, 10)
}
