package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/forge/internal/config"
	"github.com/conn-castle/forge/internal/diffview"
	"github.com/conn-castle/forge/internal/messages"
	"github.com/conn-castle/forge/internal/options"
)

var configPathFunc = config.Path
var saveConfigFunc = config.Save

// configFlags holds the raw flag values for the config command.
type configFlags struct {
	author         string
	email          string
	url            string
	language       string
	bundler        string
	packageManager string
}

func newConfigCmd() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
		Long:  messages.ConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.author, "author", "", messages.ConfigFlagAuthor)
	cmd.Flags().StringVar(&flags.email, "email", "", messages.ConfigFlagEmail)
	cmd.Flags().StringVar(&flags.url, "url", "", messages.ConfigFlagURL)
	cmd.Flags().StringVar(&flags.language, "language", "", messages.ConfigFlagLanguage)
	cmd.Flags().StringVar(&flags.bundler, "bundler", "", messages.ConfigFlagBundler)
	cmd.Flags().StringVar(&flags.packageManager, "package-manager", "", messages.ConfigFlagPackageManager)

	return cmd
}

func runConfig(cmd *cobra.Command, flags *configFlags) error {
	path, err := configPathFunc()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if !anyConfigFlagChanged(cmd) {
		printDefaults(cmd, cfg)
		return nil
	}

	updated, err := applyConfigFlags(cmd, flags, *cfg)
	if err != nil {
		return err
	}

	before, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	after, err := config.Encode(&updated)
	if err != nil {
		return err
	}

	diff := diffview.Unified(path, string(before), string(after))
	if diff == "" {
		cmd.Println(messages.ConfigNoChanges)
		return nil
	}
	if err := diffview.Fprint(cmd.OutOrStdout(), diff); err != nil {
		return err
	}

	if isTerminal() {
		apply, err := promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), messages.ConfigApplyPrompt, true)
		if err != nil {
			return err
		}
		if !apply {
			cmd.Println(messages.ConfigNotApplied)
			return nil
		}
	}

	if err := saveConfigFunc(path, &updated); err != nil {
		return err
	}
	cmd.Printf(messages.ConfigUpdatedFmt, path)
	return nil
}

func anyConfigFlagChanged(cmd *cobra.Command) bool {
	return cmd.Flags().NFlag() > 0
}

// applyConfigFlags copies changed flag values into cfg, validating the enum
// flags.
func applyConfigFlags(cmd *cobra.Command, flags *configFlags, cfg config.Config) (config.Config, error) {
	if cmd.Flags().Changed("author") {
		cfg.Author.Name = flags.author
	}
	if cmd.Flags().Changed("email") {
		cfg.Author.Email = flags.email
	}
	if cmd.Flags().Changed("url") {
		cfg.Author.URL = flags.url
	}
	if cmd.Flags().Changed("language") {
		if _, err := options.ParseLanguage(flags.language); err != nil {
			return cfg, err
		}
		cfg.Defaults.Language = flags.language
	}
	if cmd.Flags().Changed("bundler") {
		if _, err := options.ParseBundler(flags.bundler); err != nil {
			return cfg, err
		}
		cfg.Defaults.Bundler = flags.bundler
	}
	if cmd.Flags().Changed("package-manager") {
		if _, err := options.ParsePackageManager(flags.packageManager); err != nil {
			return cfg, err
		}
		cfg.Defaults.PackageManager = flags.packageManager
	}
	return cfg, nil
}

func printDefaults(cmd *cobra.Command, cfg *config.Config) {
	orUnset := func(value string) string {
		if value == "" {
			return messages.ConfigUnsetValue
		}
		return value
	}
	cmd.Println(messages.ConfigCurrentHeader)
	cmd.Printf(messages.ConfigLineFmt, "author.name", orUnset(cfg.Author.Name))
	cmd.Printf(messages.ConfigLineFmt, "author.email", orUnset(cfg.Author.Email))
	cmd.Printf(messages.ConfigLineFmt, "author.url", orUnset(cfg.Author.URL))
	cmd.Printf(messages.ConfigLineFmt, "defaults.language", orUnset(cfg.Defaults.Language))
	cmd.Printf(messages.ConfigLineFmt, "defaults.bundler", orUnset(cfg.Defaults.Bundler))
	cmd.Printf(messages.ConfigLineFmt, "defaults.package-manager", orUnset(cfg.Defaults.PackageManager))
}
