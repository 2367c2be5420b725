package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"titlesync/internal/host"
	"titlesync/internal/host/bridge"
)

type templateView struct {
	Folder string `json:"folder"`
	Name   string `json:"name"`
	ID     string `json:"id"`
}

func newTemplatesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the overlay templates the editor's library offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			var root *host.TemplateFolder
			err := ctx.withClient(func(client *bridge.Client) error {
				var libErr error
				root, libErr = client.TemplateLibrary(cmd.Context())
				return libErr
			})
			if err != nil {
				return err
			}

			views := flattenTemplates(root, "")
			if jsonOutput {
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(views) == 0 {
				fmt.Fprintln(out, "Template library is empty")
				return nil
			}
			headers := []string{"Folder", "Template"}
			aligns := []columnAlignment{alignLeft, alignLeft}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{view.Folder, view.Name})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit templates as JSON")
	return cmd
}

// flattenTemplates walks the library depth-first, templates before subfolders,
// matching the order template resolution searches in.
func flattenTemplates(folder *host.TemplateFolder, parent string) []templateView {
	if folder == nil {
		return nil
	}
	location := path.Join(parent, folder.Name)
	views := make([]templateView, 0, len(folder.Templates))
	for _, tmpl := range folder.Templates {
		views = append(views, templateView{Folder: location, Name: tmpl.Name, ID: tmpl.ID})
	}
	for _, sub := range folder.Folders {
		views = append(views, flattenTemplates(sub, location)...)
	}
	return views
}
