package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/reef/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeAuthorTable renders the top authors as a table.
func writeAuthorTable(w io.Writer, authors []schema.AuthorCount) error {
	if _, err := fmt.Fprintln(w, titleColor.Sprint("  Top authors:")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Author", "Commits", "Share"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := make([][]string, 0, len(authors))
	for i, a := range authors {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			a.Author,
			humanize.Comma(int64(a.Commits)),
			fmt.Sprintf("%.1f%%", a.Share*100),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
