package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Artexxx/HR-Employees/internal/dto"
	"github.com/Artexxx/HR-Employees/internal/listview"
)

type listOptions struct {
	search string
	sort   string
	desc   bool
	size   int
	page   int
}

func newListCmd() *cobra.Command {
	var o listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print current employees as a table",
		Example: `  hr-employees list --search sales --sort startDate --desc
  hr-employees list --size 25 --page 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := MustNewConfig()

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				log.Error().Err(err).Msg("app init failed")
				return err
			}
			defer a.Close()

			engine := listview.NewEngine(cfg.DateLayout())
			printPage(cmd.OutOrStdout(), engine, a.employees.List(), o)
			return nil
		},
	}

	cmd.Flags().StringVar(&o.search, "search", "", "case-insensitive search over all columns")
	cmd.Flags().StringVar(&o.sort, "sort", dto.FieldFirstName, "sort column key")
	cmd.Flags().BoolVar(&o.desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&o.size, "size", listview.DefaultPageSize, "entries per page: 10, 25, 50 or 100")
	cmd.Flags().IntVar(&o.page, "page", 1, "page number")

	return cmd
}

func (o listOptions) state(engine *listview.Engine, records []dto.Employee) listview.State {
	dir := listview.Asc
	if o.desc {
		dir = listview.Desc
	}

	st := listview.DefaultState().
		WithPageSize(o.size).
		WithSort(o.sort, dir).
		WithSearch(o.search)

	return st.GoTo(o.page, engine.Count(records, st.Search))
}

func printPage(w io.Writer, engine *listview.Engine, records []dto.Employee, o listOptions) {
	page := engine.Apply(records, o.state(engine, records))

	table := tablewriter.NewWriter(w)

	header := make([]string, 0, len(listview.Columns))
	for _, c := range listview.Columns {
		header = append(header, c.Label)
	}
	table.SetHeader(header)

	for _, e := range page.Items {
		row := make([]string, 0, len(listview.Columns))
		for _, c := range listview.Columns {
			row = append(row, engine.Display(c, e))
		}
		table.Append(row)
	}
	table.Render()

	if page.Empty() {
		fmt.Fprintln(w, "No employees found")
	}
	fmt.Fprintln(w, page.Summary())
}
