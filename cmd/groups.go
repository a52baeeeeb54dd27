package main

import (
	"context"
	"fmt"

	"airhhi/internal/groups"
	"airhhi/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// groupsCommand constructs the 'groups' subcommand that prints the group an
// airline code belongs to, for quick checks against the membership tables.
func groupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups [airline code]...",
		Short: "Prints the airline group for each given IATA code",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			classifier, err := groups.NewClassifier()
			if err != nil {
				logger.Fatal(context.Background(), "could not build classifier", zap.Error(err))
			}

			for _, code := range args {
				fmt.Printf("%s\t%s\n", code, classifier.Classify(code)) //nolint: forbidigo
			}
		},
	}

	return cmd
}
