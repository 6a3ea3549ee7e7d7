package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yonasBSD/solidtime/internal/client"
	"github.com/yonasBSD/solidtime/internal/solidtime"
)

func newEndpointsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List every endpoint of the API contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoints := solidtime.API().Endpoints()
			rows := make([][]string, 0, len(endpoints))
			for _, e := range endpoints {
				rows = append(rows, []string{e.Alias, e.Method, e.Path})
			}
			return a.table("ALIAS\tMETHOD\tPATH", rows)
		},
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema [name]",
		Short: "Print a named schema as JSON Schema, or list the names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas := solidtime.Schemas()
			if len(args) == 0 {
				for _, name := range schemas.Names() {
					fmt.Fprintln(a.out, name)
				}
				return nil
			}
			s, ok := schemas.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown schema %q", args[0])
			}
			doc, err := s.Document()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, string(doc))
			return err
		},
	}
}

func newCallCmd(a *app) *cobra.Command {
	var pathArgs, queryArgs []string
	var body string
	cmd := &cobra.Command{
		Use:   "call <alias>",
		Short: "Call any endpoint by alias",
		Long: "Call any endpoint by alias. Path and query values are given as key=value;\n" +
			"--body takes JSON, or @file to read it from a file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			callArgs, err := parseCallArgs(pathArgs, queryArgs, body)
			if err != nil {
				return err
			}
			if _, ok := callArgs.Path["organization"]; !ok && a.cfg.Organization != "" {
				if e, found := solidtime.API().Lookup(args[0]); found && slices.Contains(e.PathParams(), "organization") {
					callArgs.Path["organization"] = a.cfg.Organization
				}
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			res, err := c.Do(cmd.Context(), args[0], callArgs)
			if err != nil {
				return err
			}
			return a.printJSON(res.Body)
		},
	}
	cmd.Flags().StringArrayVar(&pathArgs, "path", nil, "Path parameter as name=value")
	cmd.Flags().StringArrayVar(&queryArgs, "query", nil, "Query parameter as name=value, repeatable")
	cmd.Flags().StringVar(&body, "body", "", "JSON request body or @file")
	return cmd
}

func parseCallArgs(pathArgs, queryArgs []string, body string) (client.Args, error) {
	out := client.Args{Path: make(map[string]string)}
	for _, kv := range pathArgs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return out, fmt.Errorf("--path %q: expected name=value", kv)
		}
		out.Path[k] = v
	}
	for _, kv := range queryArgs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return out, fmt.Errorf("--query %q: expected name=value", kv)
		}
		if out.Query == nil {
			out.Query = make(map[string][]string)
		}
		out.Query.Add(k, v)
	}
	if body != "" {
		raw := []byte(body)
		if strings.HasPrefix(body, "@") {
			b, err := os.ReadFile(body[1:])
			if err != nil {
				return out, fmt.Errorf("read body: %w", err)
			}
			raw = b
		}
		if !json.Valid(raw) {
			return out, fmt.Errorf("--body is not valid JSON")
		}
		out.Body = json.RawMessage(raw)
	}
	return out, nil
}
