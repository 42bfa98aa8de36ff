package main

import "testing"

func TestRootMirrorsScrapeFlags(t *testing.T) {
	// The default-command path parses flags on the root command, so every
	// scrape flag must exist there too.
	for _, name := range []string{"output", "count", "headless", "all"} {
		if scrapeCmd.Flags().Lookup(name) == nil {
			t.Errorf("scrape command is missing flag %q", name)
		}
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("root command is missing mirrored flag %q", name)
		}
	}
}

func TestFlagChangedSeesRootFlags(t *testing.T) {
	if flagChanged(scrapeCmd, "count") {
		t.Fatal("count should start unchanged")
	}

	// Simulate `foodscraper mohinga --count 5`: the flag is parsed on the
	// root command, not on scrapeCmd.
	if err := rootCmd.Flags().Set("count", "5"); err != nil {
		t.Fatalf("failed to set root flag: %v", err)
	}
	t.Cleanup(func() {
		rootCmd.Flags().Lookup("count").Changed = false
		imageCount = 0
	})

	if !flagChanged(scrapeCmd, "count") {
		t.Error("flagChanged should see a flag set on the root command")
	}
	if imageCount != 5 {
		t.Errorf("expected shared flag variable to be 5, got %d", imageCount)
	}
}
