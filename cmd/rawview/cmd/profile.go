package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"rawview/pkg/rawview"
)

// NewProfileCmd groups the profile subcommands.
func NewProfileCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "save and show decode profiles",
	}
	cmd.AddCommand(newProfileSaveCmd(), newProfileShowCmd())
	return cmd
}

func newProfileSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <profile.yaml>",
		Short: "write the frame flags to a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("name")
			ws, _ := cmd.Flags().GetString("workspace")
			prof := &rawview.Profile{Name: name, Workspace: ws, Params: p}
			if err := rawview.SaveProfile(args[0], prof); err != nil {
				return errors.Wrapf(err, "saving %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), args[0])
			return nil
		},
	}
	addFrameFlags(cmd)
	cmd.Flags().String("name", "", "profile name")
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <profile.yaml>",
		Short: "print a profile with defaults filled in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := rawview.LoadProfile(args[0])
			if err != nil {
				return errors.Wrapf(err, "loading %s", args[0])
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(prof); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
