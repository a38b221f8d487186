package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provide-io/bitmaphelper/internal/resroot"
	"github.com/provide-io/bitmaphelper/pkg/logging"
	"github.com/provide-io/bitmaphelper/pkg/resources"
)

const version = "0.1.0"

const (
	exitError    = 1
	exitNotFound = 2
)

// errNotFound marks a resource name that did not resolve.
var errNotFound = errors.New("resource not found")

// errNoResources marks a resource location that is missing on disk.
var errNoResources = errors.New("no resources")

var (
	cfgFile     string
	versionFlag bool
	rootCmd     *cobra.Command
)

func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion() {
	fmt.Printf("bitmap-helper %s\n", version)
	fmt.Printf("Built: %s\n", getBuildTimestamp())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd = &cobra.Command{
		Use:           "bitmap-helper",
		Short:         "Decode and sample down bitmap resources",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion()
				return nil
			}
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (yaml or toml)")
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.String("resources", "", "Resource directory or PE executable (defaults to "+resroot.EnvResources+" or the platform data dir)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	for _, key := range []string{"log-level", "resources"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newDecodeCmd(),
		newProbeCmd(),
		newListCmd(),
		newPreviewCmd(),
		newCreateCmd(),
		newFormatsCmd(),
		newFlagsCmd(),
		newEmbedCmd(),
	)
}

// initConfig layers the config file and BITMAPHELPER_* variables under the flags.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to read config %s: %v\n", cfgFile, err)
			os.Exit(exitError)
		}
	}
	viper.SetEnvPrefix("BITMAPHELPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newLogger() hclog.Logger {
	return logging.NewLogger("bitmap-helper", viper.GetString("log-level"), os.Stderr)
}

func openResources(logger hclog.Logger) (resources.Resources, error) {
	location := viper.GetString("resources")
	if location == "" {
		location = resroot.Root()
	}
	if !resroot.Exists(location) {
		return nil, fmt.Errorf("%w at %s (use --resources or %s)", errNoResources, location, resroot.EnvResources)
	}
	logger.Debug("Opening resources", "location", location)
	return resources.Open(location, resources.WithLogger(logger))
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errNotFound) {
			os.Exit(exitNotFound)
		}
		os.Exit(exitError)
	}
}
