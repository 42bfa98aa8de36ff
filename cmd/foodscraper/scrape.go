package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"foodscraper/pkg/categories"
	"foodscraper/pkg/config"
	"foodscraper/pkg/logger"
	"foodscraper/pkg/scraper"
	"foodscraper/pkg/ui"
)

var (
	// Scrape command flags
	outputDir  string
	imageCount int
	headless   bool
	allFoods   bool
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape [category...]",
	Short: "Download images for food categories",
	Long: `Download images for one or more food categories.

Categories can be given by name or by their number in 'foodscraper categories'.
Names outside the built-in list are used as search terms as-is. With no
arguments the command asks interactively whether to download everything or a
single category.`,
	Example: `  # Download every category
  foodscraper scrape --all

  # Download two specific categories
  foodscraper scrape mohinga "shan noodles"

  # Category by list number, 50 images, visible browser window
  foodscraper scrape 3 --count 50 --headless=false

  # Choose interactively
  foodscraper scrape`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runScrape(cmd, args)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for downloads")
	scrapeCmd.Flags().IntVarP(&imageCount, "count", "n", 0, "images to download per category")
	scrapeCmd.Flags().BoolVar(&headless, "headless", false, "run the browser without a window")
	scrapeCmd.Flags().BoolVarP(&allFoods, "all", "a", false, "download every known category")

	// Also add these flags to root command so they work on the
	// default-command path (`foodscraper mohinga --count 5`)
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for downloads")
	rootCmd.Flags().IntVarP(&imageCount, "count", "n", 0, "images to download per category")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run the browser without a window")
	rootCmd.Flags().BoolVarP(&allFoods, "all", "a", false, "download every known category")
}

// flagChanged reports whether a flag was set on the scrape command or, via
// the default-command path, on the root command.
func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd.Flags().Changed(name) {
		return true
	}
	if f := rootCmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

func runScrape(cmd *cobra.Command, args []string) {
	// Build flags map from command line
	flags := make(map[string]interface{})
	if outputDir != "" {
		flags["output"] = outputDir
	}
	if flagChanged(cmd, "count") {
		flags["count"] = imageCount
	}
	if flagChanged(cmd, "headless") {
		flags["headless"] = headless
	}
	if logLevel != "info" {
		flags["log-level"] = logLevel
	}

	// Load configuration
	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	// Initialize logger
	logger.Initialize(&cfg.Logging)
	logger.WithField("version", version).Info("Foodscraper starting")

	categoryList, err := resolveCategories(args)
	if err != nil {
		ui.PrintError("Invalid category selection", err.Error())
		os.Exit(1)
	}

	ui.PrintInfo("Output directory", cfg.Output.BaseDirectory)
	ui.PrintInfo("Images per category", intString(cfg.Scrape.ImagesPerCategory))

	// Stop cleanly on ctrl-c so the browser process does not linger.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := scraper.New(cfg)
	if err != nil {
		ui.PrintError("Failed to initialize scraper", err.Error())
		os.Exit(1)
	}

	if err := s.Run(ctx, categoryList); err != nil {
		logger.WithError(err).Error("Scraping run failed")
		ui.PrintError("DOWNLOAD FAILED", err.Error())
		os.Exit(1)
	}

	logger.Info("Scraping run completed successfully")
	ui.PrintSuccess("All done. Enjoy the food pictures.")
}

// resolveCategories turns command arguments into a category list, falling
// back to the interactive prompt when nothing was specified.
func resolveCategories(args []string) ([]string, error) {
	if allFoods {
		return categories.All(), nil
	}
	if len(args) == 0 {
		return ui.NewPrompter(os.Stdin, os.Stdout).ChooseCategories()
	}

	list := make([]string, 0, len(args))
	for _, arg := range args {
		category, err := categories.Resolve(arg)
		if err != nil {
			return nil, err
		}
		list = append(list, category)
	}
	return list, nil
}

// Make scrape the default command when no subcommand is specified
func init() {
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 && isKnownCommand(args[0]) {
			return cmd.Help()
		}
		return scrapeCmd.RunE(scrapeCmd, args)
	}
}

func isKnownCommand(arg string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == arg || c.HasAlias(arg) {
			return true
		}
	}
	return false
}

func intString(n int) string {
	if n == 0 {
		return "0 (folders only)"
	}
	return strconv.Itoa(n)
}
