package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/conn-castle/multi-agent-kit/internal/config"
	"github.com/conn-castle/multi-agent-kit/internal/install"
	"github.com/conn-castle/multi-agent-kit/internal/messages"
	"github.com/conn-castle/multi-agent-kit/internal/templates"
)

const (
	flagTarget          = "target"
	flagConfig          = "config"
	flagForce           = "force"
	flagAgentsGitignore = "agents-gitignore"
	flagYes             = "yes"
)

var confirmForceFunc = confirmForce
var reloadTemplates = templates.Reload

func newInitCmd() *cobra.Command {
	var targetFlag string
	var configFlag string
	var forceFlag bool
	var agentsGitignoreFlag bool
	var yes bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(targetFlag)
			if err != nil {
				return err
			}
			cfg, cfgPath, err := loadConfig(target, configFlag)
			if err != nil {
				return err
			}
			force := cfg.ForceOr(false)
			if cmd.Flags().Changed(flagForce) {
				force = forceFlag
			}
			agentsGitignore := cfg.AgentsGitignoreOr(false)
			if cmd.Flags().Changed(flagAgentsGitignore) {
				agentsGitignore = agentsGitignoreFlag
			}
			if err := bindAssetSources(cmd.ErrOrStderr(), cfg.AssetsDir(cfgPath)); err != nil {
				return err
			}

			if force && !yes && isInteractive() {
				proceed, err := confirmOverwrite(target)
				if err != nil {
					return err
				}
				if !proceed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.InitForceCancelled)
					return nil
				}
			}

			installer := install.New(target, install.Options{
				Force:                 force,
				CreateAgentsGitignore: agentsGitignore,
			})
			written, err := installer.EnsureAssets()
			if err != nil {
				printWritten(cmd.OutOrStdout(), target, written, false)
				return err
			}
			printWritten(cmd.OutOrStdout(), target, written, true)
			return nil
		},
	}

	cmd.Flags().StringVar(&targetFlag, flagTarget, "", messages.FlagTarget)
	cmd.Flags().StringVar(&configFlag, flagConfig, "", messages.FlagConfig)
	cmd.Flags().BoolVar(&forceFlag, flagForce, false, messages.InitFlagForce)
	cmd.Flags().BoolVar(&agentsGitignoreFlag, flagAgentsGitignore, false, messages.InitFlagAgentsGitignore)
	cmd.Flags().BoolVarP(&yes, flagYes, "y", false, messages.InitFlagYes)

	return cmd
}

// loadConfig loads the --config file when given, else <target>/.maw.toml when present.
// It returns the path used so relative config values can be resolved against it.
func loadConfig(target string, flagValue string) (*config.Config, string, error) {
	if raw := strings.TrimSpace(flagValue); raw != "" {
		path, err := homedir.Expand(raw)
		if err != nil {
			return nil, "", err
		}
		cfg, err := config.Load(path)
		return cfg, path, err
	}
	path := config.DefaultPath(target)
	cfg, _, err := config.LoadOptional(path)
	return cfg, path, err
}

// bindAssetSources resolves the bundled assets, preferring the embedded copy and
// falling back to assetsDir (or MAW_ASSETS_DIR when assetsDir is empty).
func bindAssetSources(stderr io.Writer, assetsDir string) error {
	sources := templates.DefaultSources()
	if assetsDir != "" {
		sources = []templates.Source{templates.EmbeddedSource(), templates.DirSource(assetsDir)}
	}
	binding, err := reloadTemplates(sources...)
	if err != nil {
		return err
	}
	if binding.Source != templates.SourceEmbedded {
		_, _ = color.New(color.FgYellow).Fprintf(stderr, messages.InitAssetsSourceFmt, binding.Source)
	}
	return nil
}

// confirmOverwrite prompts only when some manifest entries already exist.
func confirmOverwrite(target string) (bool, error) {
	missing, err := install.MissingAssets(target)
	if err != nil {
		return false, err
	}
	absent := make(map[string]struct{}, len(missing))
	for _, name := range missing {
		absent[name] = struct{}{}
	}
	existing := []string{}
	for _, name := range install.DefaultManifest().Names() {
		if _, ok := absent[name]; !ok {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return true, nil
	}
	return confirmForceFunc(existing)
}

// printWritten lists written paths relative to target. complete reports
// whether the run finished, so an empty list can be shown as up to date.
func printWritten(out io.Writer, target string, written []string, complete bool) {
	if len(written) == 0 {
		if complete {
			_, _ = fmt.Fprintf(out, messages.InitUpToDateFmt, target)
		}
		return
	}
	_, _ = fmt.Fprintf(out, messages.InitWrittenHeaderFmt, len(written), target)
	added := color.New(color.FgGreen)
	for _, path := range written {
		_, _ = added.Fprintf(out, messages.InitWrittenLineFmt, install.DisplayPath(target, path))
	}
}
