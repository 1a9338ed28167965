package cmd

import (
	"log"
	"os"

	"github.com/jeff-99/sage/pkg/cli"
	"github.com/jeff-99/sage/pkg/input"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sage",
		Short: "sage - Ask for input on the console",
		Long: `sage - Ask for input on the console
	Example:

	sage --name Ada --age 29
	sage ask "Favourite colour? " "Favourite number? "
	`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			age, _ := cmd.Flags().GetInt("age")

			in := input.NewReader(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err := cli.Wizard(in, cmd.OutOrStdout(), name, age)
			return err
		},
	}

	root.Flags().String("name", "", "Your name, asked for when empty")
	root.Flags().Int("age", -1, "Your age, asked for when negative")

	root.AddCommand(&cobra.Command{
		Use:   "ask PROMPT...",
		Short: "Ask each prompt in turn and print the answers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := input.NewReader(cmd.InOrStdin(), cmd.OutOrStdout())
			_, err := cli.Ask(in, cmd.OutOrStdout(), args)
			return err
		},
	})

	return root
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SilenceErrors = true
	err := rootCmd.Execute()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
