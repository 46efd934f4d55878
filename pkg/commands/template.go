package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rapport/pkg/commands/options"
	"tableflip.dev/rapport/pkg/runner/tmpl"
	"tableflip.dev/rapport/pkg/store"
	"tableflip.dev/rapport/pkg/timesheet"
)

func addTemplate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "manage personal-info templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTemplateSave(cmd)
	addTemplateList(cmd)
	addTemplateDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addTemplateSave(parent *cobra.Command) {
	io := &options.InfoOptions{}

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "save a personal-info template, overwriting a same-named one",
		Example: `
rapport template save acme --name Muster --vorname Max --persnr 4711
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tmpl.Save{
				Persistence: p,
				Name:        args[0],
				Info: timesheet.PersonalInfo{
					Name:    io.Name,
					Vorname: io.Vorname,
					GebDat:  io.GebDat,
					PersNr:  io.PersNr,
				},
			}
			return s.Do(context.Background())
		},
	}

	options.AddInfoArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addTemplateList(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list stored templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := tmpl.List{Persistence: p}
			return l.Do(context.Background())
		},
	}
	parent.AddCommand(cmd)
}

func addTemplateDelete(parent *cobra.Command) {
	to := &options.TemplateOptions{}

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "delete a stored template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			d := tmpl.Delete{Persistence: p, Name: args[0], Force: to.Force}
			return d.Do(context.Background())
		},
	}

	options.AddForceArg(cmd, to)
	parent.AddCommand(cmd)
}
