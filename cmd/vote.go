package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/readychina/internal/ui/layout"
	"github.com/abhisek/readychina/internal/vote"
)

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Check or change your \"count me in\" vote",
}

var voteStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the counter and whether you're counted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCounter(cmd, func(c *vote.Counter) {
			printVote(cmd.OutOrStdout(), c)
		})
	},
}

var voteInCmd = &cobra.Command{
	Use:   "in",
	Short: "Count yourself in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCounter(cmd, func(c *vote.Counter) {
			out := cmd.OutOrStdout()
			if !c.CountMeIn(cmd.Context()) {
				fmt.Fprintln(out, "You're already counted.")
				printVote(out, c)
				return
			}
			// No quiz to close here; the vote sticks right away.
			c.CloseQuiz(cmd.Context())
			printVote(out, c)
		})
	},
}

var voteCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel your move",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCounter(cmd, func(c *vote.Counter) {
			c.Cancel(cmd.Context())
			printVote(cmd.OutOrStdout(), c)
		})
	},
}

// withCounter builds a counter over the stored flag and runs fn with it.
func withCounter(cmd *cobra.Command, fn func(*vote.Counter)) error {
	env, err := openCLI(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	flag := vote.NewStoredFlag(env.store.SettingsRepo(), env.log)
	fn(vote.NewCounter(flag, env.store.EventRepo(), env.log))
	return nil
}

func printVote(out io.Writer, c *vote.Counter) {
	fmt.Fprintf(out, "%s people want to move to China\n", layout.FormatCount(c.Count()))
	if c.HasVoted() {
		fmt.Fprintln(out, "You're one of them.")
	} else {
		fmt.Fprintln(out, "You're not counted yet.")
	}
}

func init() {
	voteCmd.AddCommand(voteStatusCmd)
	voteCmd.AddCommand(voteInCmd)
	voteCmd.AddCommand(voteCancelCmd)
}
