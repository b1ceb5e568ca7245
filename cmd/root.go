package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "surfer",
	Short: "Random-surfer PageRank analyzer for HTML corpora",
	Long: `Surfer crawls a directory of HTML pages, builds the directed link
graph between them, and estimates every page's importance twice: by
sampling a long random walk and by iterating the PageRank fixed point
to convergence.`,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .surfer.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".surfer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SURFER")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault ranks the current directory when it already looks like
// a corpus (contains .html files). Otherwise it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return cmd.Help()
	}
	pages, err := filepath.Glob(filepath.Join(wd, "*.html"))
	if err != nil || len(pages) == 0 {
		return cmd.Help()
	}
	// Delegate to the rank subcommand.
	return runRank(rankCmd, nil)
}
