package main

import (
	"github.com/spf13/cobra"

	"github.com/rojojun/hello-time-man/internal/launchers"
	"github.com/rojojun/hello-time-man/internal/messages"
	"github.com/rojojun/hello-time-man/internal/platform"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var goos, goarch, name string
	cmd := &cobra.Command{
		Use:   messages.RenderUse,
		Short: messages.RenderShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.open(cmd)
			if err != nil {
				return err
			}
			desc := s.platform
			if goos != "" || goarch != "" {
				if goos == "" {
					goos = desc.OS
				}
				desc, err = platform.Parse(goos, goarch)
				if err != nil {
					return err
				}
			}
			if name == "" {
				name = s.cfg.PrimaryLauncher()
			}
			data, err := launchers.Render(desc, s.cfg, name)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&goos, "os", "", messages.RenderFlagOS)
	cmd.Flags().StringVar(&goarch, "arch", "", messages.RenderFlagArch)
	cmd.Flags().StringVar(&name, "name", "", messages.RenderFlagName)
	return cmd
}
