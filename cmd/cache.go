package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cacheCmd groups the cache file subcommands
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the character cache file",
}

var cachePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the cache file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), fileCache.Path())
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the cache file so the next run fetches again",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cachePathCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	exists, err := fileCache.Exists()
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(cmd.OutOrStdout(), "No cache file at %s\n", fileCache.Path())
		return nil
	}

	if err := fileCache.Clear(); err != nil {
		return err
	}

	logger.Info().Str("path", fileCache.Path()).Msg("Removed cache file")
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", fileCache.Path())
	return nil
}
