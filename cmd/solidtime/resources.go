package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yonasBSD/solidtime/internal/solidtime"
	"github.com/yonasBSD/solidtime/internal/utils"
)

func (a *app) table(header string, rows [][]string) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetMe(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res.Raw)
			}
			u := res.Data
			return a.table("ID\tNAME\tEMAIL\tTIMEZONE", [][]string{{u.ID, u.Name, u.Email, u.Timezone}})
		},
	}
}

func newMembershipsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "memberships",
		Short: "List the organizations you belong to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetMyMemberships(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res.Raw)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, m := range res.Data {
				rows = append(rows, []string{m.Organization.ID, m.Organization.Name, m.Role})
			}
			return a.table("ORGANIZATION\tNAME\tROLE", rows)
		},
	}
}

func newActiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "Show the running time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetMyActiveTimeEntry(cmd.Context())
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res.Raw)
			}
			return a.table("ID\tSTART\tDESCRIPTION\tPROJECT", [][]string{timeEntryRow(res.Data)[:4]})
		},
	}
}

func newClientsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage clients",
	}

	var archived string
	list := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := a.organization()
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetClients(cmd.Context(), org, &solidtime.ClientListQuery{Archived: archived})
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res.Raw)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, cl := range res.Data {
				rows = append(rows, []string{cl.ID, cl.Name, fmt.Sprint(cl.IsArchived)})
			}
			return a.table("ID\tNAME\tARCHIVED", rows)
		},
	}
	list.Flags().StringVar(&archived, "archived", "", "Filter by archive state: true, false or all")

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := a.organization()
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.CreateClient(cmd.Context(), org, solidtime.ClientStoreRequest{Name: args[0]})
			if err != nil {
				return err
			}
			return a.printJSON(res.Raw)
		},
	}

	cmd.AddCommand(list, create)
	return cmd
}

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
	}

	var archived string
	var page int
	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := a.organization()
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			q := &solidtime.ProjectListQuery{Archived: archived}
			if page > 0 {
				q.Page = &page
			}
			res, err := c.GetProjects(cmd.Context(), org, q)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res.Raw)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, p := range res.Data {
				rows = append(rows, []string{p.ID, p.Name, p.Color, fmt.Sprint(p.IsBillable)})
			}
			if err := a.table("ID\tNAME\tCOLOR\tBILLABLE", rows); err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "page %d of %d, %d total\n", res.Meta.CurrentPage, res.Meta.LastPage, res.Meta.Total)
			return err
		},
	}
	list.Flags().StringVar(&archived, "archived", "", "Filter by archive state: true, false or all")
	list.Flags().IntVar(&page, "page", 0, "Page number")

	cmd.AddCommand(list)
	return cmd
}

func newTagsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage tags",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := a.organization()
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetTags(cmd.Context(), org)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res.Raw)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, t := range res.Data {
				rows = append(rows, []string{t.ID, t.Name})
			}
			return a.table("ID\tNAME", rows)
		},
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := a.organization()
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.CreateTag(cmd.Context(), org, solidtime.TagStoreRequest{Name: args[0]})
			if err != nil {
				return err
			}
			return a.printJSON(res.Raw)
		},
	}

	cmd.AddCommand(list, create)
	return cmd
}

func newTasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}

	var projectID, done string
	list := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := a.organization()
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.GetTasks(cmd.Context(), org, &solidtime.TaskListQuery{ProjectID: projectID, Done: done})
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res.Raw)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, t := range res.Data {
				rows = append(rows, []string{t.ID, t.Name, t.ProjectID, fmt.Sprint(t.IsDone)})
			}
			return a.table("ID\tNAME\tPROJECT\tDONE", rows)
		},
	}
	list.Flags().StringVar(&projectID, "project", "", "Only tasks of this project")
	list.Flags().StringVar(&done, "done", "", "Filter by state: true, false or all")

	cmd.AddCommand(list)
	return cmd
}

func newTimeEntriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time-entries",
		Short: "Manage time entries",
	}

	var q solidtime.TimeEntryListQuery
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			org, err := a.organization()
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			if limit > 0 {
				q.Limit = &limit
			}
			res, err := c.GetTimeEntries(cmd.Context(), org, &q)
			if err != nil {
				return err
			}
			if a.asJSON {
				return a.printJSON(res.Raw)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, e := range res.Data {
				rows = append(rows, timeEntryRow(e))
			}
			return a.table("ID\tSTART\tDESCRIPTION\tPROJECT\tDURATION", rows)
		},
	}
	f := list.Flags()
	f.StringVar(&q.Start, "start", "", "Only entries starting after this UTC timestamp")
	f.StringVar(&q.End, "end", "", "Only entries starting before this UTC timestamp")
	f.StringVar(&q.MemberID, "member", "", "Only entries of this member")
	f.StringVar(&q.Active, "active", "", "Filter running entries: true or false")
	f.StringVar(&q.Billable, "billable", "", "Filter billable entries: true or false")
	f.StringSliceVar(&q.ProjectIDs, "project", nil, "Only entries of these projects")
	f.StringSliceVar(&q.TagIDs, "tag", nil, "Only entries with these tags")
	f.IntVar(&limit, "limit", 0, "Maximum number of entries, 1 to 500")

	cmd.AddCommand(list)
	return cmd
}

func timeEntryRow(e solidtime.TimeEntry) []string {
	duration := "running"
	if e.Duration != nil {
		duration = utils.FormatSeconds(int(*e.Duration))
	}
	return []string{
		e.ID,
		e.Start,
		utils.DerefString(e.Description, ""),
		utils.DerefString(e.ProjectID, "-"),
		duration,
	}
}
