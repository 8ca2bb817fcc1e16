// Package cmd provides the command-line interface for PageReport.
// It handles command parsing, configuration loading, and report execution.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"pagereport/internal/analyzer"
	"pagereport/internal/config"
	"pagereport/internal/fetch"
	"pagereport/internal/logging"
	"pagereport/internal/report"
)

var (
	cfgFile   string
	version   string
	buildTime string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pagereport [URL]",
	Short: "A single-page web content report tool",
	Long: `PageReport fetches a single web page and prints a report of its title,
meta tags, declared size, visible-text word statistics, meta keywords
missing from the content, and hyperlinks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information for the CLI
func SetVersionInfo(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Configuration file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pagereport.yml)")

	// Configuration management flags
	rootCmd.Flags().Bool("show-config", false, "Display current configuration in YAML format and exit")

	// Fetch flags
	rootCmd.Flags().DurationP("timeout", "t", 30*time.Second, "HTTP request timeout")
	rootCmd.Flags().StringP("user-agent", "u", "PageReport/1.0", "HTTP User-Agent header")
	rootCmd.Flags().StringSliceP("header", "H", []string{}, "Custom HTTP headers in 'Name: Value' format (use multiple times for multiple headers)")

	// Analysis flags
	rootCmd.Flags().Bool("all-text", false, "Count all source text instead of only visible text")

	// Logging flags
	rootCmd.Flags().String("log-level", "warn", "Log level: debug, info, warn, or error")

	// Bind flags to viper
	bindFlags := []struct {
		viperKey string
		flagName string
	}{
		{"request_timeout", "timeout"},
		{"user_agent", "user-agent"},
		{"headers", "header"},
		{"all_text", "all-text"},
		{"log_level", "log-level"},
	}

	for _, bind := range bindFlags {
		if err := viper.BindPFlag(bind.viperKey, rootCmd.Flags().Lookup(bind.flagName)); err != nil {
			// Log the error but continue - non-critical for operation
			fmt.Fprintf(os.Stderr, "Warning: failed to bind flag %s: %v\n", bind.flagName, err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("pagereport")
	}

	viper.AutomaticEnv() // read in environment variables that match
	viper.SetEnvPrefix("PR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func generateUserAgent() string {
	if version != "" && version != "dev" {
		return fmt.Sprintf("PageReport/%s", version)
	}
	return "PageReport/dev"
}

func showCurrentConfig(cfg *config.ReportConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	// Validate configuration before showing it
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Configuration validation failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "Displaying configuration anyway...\n\n")
	}

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration to YAML: %w", err)
	}

	fmt.Printf("# Current PageReport Configuration\n")
	fmt.Printf("# Generated at: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("# Configuration file search paths: ./pagereport.yml\n")
	fmt.Printf("# Environment variables prefix: PR_\n\n")

	fmt.Print(string(yamlData))

	fmt.Printf("\n# Configuration source priority:\n")
	fmt.Printf("# 1. Command-line arguments (highest priority)\n")
	fmt.Printf("# 2. Environment variables (PR_ prefix)\n")
	fmt.Printf("# 3. Configuration file (pagereport.yml)\n")
	fmt.Printf("# 4. Default values (lowest priority)\n")

	return nil
}

// promptURL asks the user for a URL on the command's input stream.
func promptURL(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Enter page URL: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read URL: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func runReport(cmd *cobra.Command, args []string) error {
	// Handle --show-config flag first
	showConfig, _ := cmd.Flags().GetBool("show-config")

	cfg := config.DefaultConfig()

	// Override with viper values
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Update User-Agent with dynamic version if not explicitly set
	if !cmd.Flags().Changed("user-agent") && cfg.UserAgent == "PageReport/1.0" {
		cfg.UserAgent = generateUserAgent()
	}

	// Handle --show-config: display current configuration and exit
	if showConfig {
		return showCurrentConfig(cfg)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.SetDefault(logging.Config{Level: logging.ParseLevel(cfg.LogLevel)})

	// URL from argument, config, or interactive prompt
	if len(args) > 0 {
		cfg.URL = args[0]
	}
	if cfg.URL == "" {
		url, err := promptURL(cmd)
		if err != nil {
			return err
		}
		cfg.URL = url
	}
	if cfg.URL == "" {
		return fmt.Errorf("no URL provided")
	}

	headers, err := cfg.ParseHeaders()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client := fetch.NewClient(cfg.UserAgent, cfg.RequestTimeout)
	defer client.Close()
	client.SetCustomHeaders(headers)

	resp, err := client.Get(cmd.Context(), fetch.NormalizeURL(cfg.URL))
	if err != nil {
		return fmt.Errorf("error getting URL: %w", err)
	}

	if resp.StatusCode != 200 {
		return fmt.Errorf("HTTP error %d:\n%s", resp.StatusCode, resp.Body)
	}

	var filter analyzer.TextFilter = analyzer.VisibleText{}
	if cfg.AllText {
		filter = analyzer.AllText{}
	}

	rep, err := analyzer.Analyze(resp.Body, resp.ContentLength, filter)
	if err != nil {
		return fmt.Errorf("failed to analyze page: %w", err)
	}

	report.Render(cmd.OutOrStdout(), rep)

	return nil
}
