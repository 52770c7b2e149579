// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/treegen/internal/comparator"
	"github.com/temirov/treegen/internal/config"
	"github.com/temirov/treegen/internal/filter"
	"github.com/temirov/treegen/internal/output"
	"github.com/temirov/treegen/internal/render"
	"github.com/temirov/treegen/internal/utils"
)

const (
	rootUse              = "treegen"
	rootShortDescription = "treegen command line interface"
	rootLongDescription  = `treegen renders a textual tree of a directory hierarchy.
Entries can be filtered by extension or exact file name, and siblings can be
ordered by a configurable sequence of sorting criteria.`

	versionFlagName        = "version"
	versionFlagDescription = "display application version"
	versionTemplate        = "treegen version: %s\n"

	treeUse              = "tree [path]"
	treeAlias            = "t"
	treeShortDescription = "render a directory tree (" + treeAlias + ")"
	treeLongDescription  = `Render the directory tree rooted at the given path.
Use the include and exclude flags to filter entries, --sort to order
siblings, and --output or --copy to persist or share the result.`
	treeUsageExample = `  # Render the current directory, directories first
  treegen tree --sort directories-first --sort alphabetical

  # Hide build artifacts and write the tree to a file
  treegen tree --exclude-ext tmp --exclude-file node_modules --output tree.txt ./project`

	includeExtensionFlagName = "include-ext"
	excludeExtensionFlagName = "exclude-ext"
	includeFileFlagName      = "include-file"
	excludeFileFlagName      = "exclude-file"
	sortFlagName             = "sort"
	reverseFlagName          = "reverse"
	outputFlagName           = "output"
	copyFlagName             = "copy"
	configFlagName           = "config"

	includeExtensionFlagDescription = "extension to include (repeatable)"
	excludeExtensionFlagDescription = "extension to exclude (repeatable)"
	includeFileFlagDescription      = "exact file name to include (repeatable)"
	excludeFileFlagDescription      = "exact file name to exclude (repeatable)"
	sortFlagDescription             = "sort criterion, in priority order (repeatable): directories-first, alphabetical, extension, last-modified, size"
	reverseFlagDescription          = "reverse the combined sort result"
	outputFlagDescription           = "write the rendered tree to this file"
	copyFlagDescription             = "copy the rendered tree to the clipboard"
	configFlagDescription           = "path to a configuration file"

	defaultPath = "."

	errorCopyTreeFormat = "copying tree to clipboard: %w"
)

// treeOptions stores flag values for the tree command.
type treeOptions struct {
	includeExtensions []string
	excludeExtensions []string
	includeFiles      []string
	excludeFiles      []string
	sortCriteria      []string
	reverse           bool
	outputPath        string
	copyToClipboard   bool
	configPath        string
}

// Execute runs the root command.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

func createRootCommand() *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(createTreeCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand() *cobra.Command {
	var options treeOptions

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			rootPath := defaultPath
			if len(arguments) > 0 {
				rootPath = arguments[0]
			}
			reverseChanged := command.Flags().Changed(reverseFlagName)
			copyChanged := command.Flags().Changed(copyFlagName)
			return runTree(rootPath, options, reverseChanged, copyChanged, command.OutOrStdout())
		},
	}

	treeCommand.Flags().StringArrayVar(&options.includeExtensions, includeExtensionFlagName, nil, includeExtensionFlagDescription)
	treeCommand.Flags().StringArrayVar(&options.excludeExtensions, excludeExtensionFlagName, nil, excludeExtensionFlagDescription)
	treeCommand.Flags().StringArrayVar(&options.includeFiles, includeFileFlagName, nil, includeFileFlagDescription)
	treeCommand.Flags().StringArrayVar(&options.excludeFiles, excludeFileFlagName, nil, excludeFileFlagDescription)
	treeCommand.Flags().StringArrayVar(&options.sortCriteria, sortFlagName, nil, sortFlagDescription)
	treeCommand.Flags().BoolVar(&options.reverse, reverseFlagName, false, reverseFlagDescription)
	treeCommand.Flags().StringVar(&options.outputPath, outputFlagName, "", outputFlagDescription)
	treeCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	treeCommand.Flags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	return treeCommand
}

// runTree resolves configuration, builds the filter and comparator, renders
// the tree, and dispatches the result to stdout and the optional
// destinations.
func runTree(rootPath string, options treeOptions, reverseChanged bool, copyChanged bool, standardOutput io.Writer) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configPath})
	if configurationError != nil {
		return configurationError
	}
	resolved := resolveTreeOptions(options, applicationConfiguration.Tree, reverseChanged, copyChanged)

	criteria, parseError := comparator.ParseSortCriteria(resolved.sortCriteria)
	if parseError != nil {
		return parseError
	}

	applicationLogger, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	defer func() {
		_ = applicationLogger.Sync()
	}()

	structureFilter := buildStructureFilter(resolved)
	var entryComparator render.EntryComparator
	if len(criteria) > 0 || resolved.reverse {
		configuredComparator := comparator.NewEntryComparator(applicationLogger)
		configuredComparator.AddAll(criteria)
		configuredComparator.SetReverse(resolved.reverse)
		entryComparator = configuredComparator
	}

	treeText := render.NewTreeRenderer().Render(rootPath, structureFilter, entryComparator)

	if _, writeError := standardOutput.Write([]byte(treeText)); writeError != nil {
		return writeError
	}
	if resolved.outputPath != "" {
		if persistError := output.WriteTree(resolved.outputPath, treeText); persistError != nil {
			return persistError
		}
	}
	if resolved.copyToClipboard {
		if copyError := output.NewClipboardService().Copy(treeText); copyError != nil {
			return fmt.Errorf(errorCopyTreeFormat, copyError)
		}
	}
	return nil
}

// resolveTreeOptions combines configuration file defaults with flag values;
// flags win wherever both are present.
func resolveTreeOptions(options treeOptions, defaults config.TreeCommandConfiguration, reverseChanged bool, copyChanged bool) treeOptions {
	resolved := options
	if len(resolved.includeExtensions) == 0 {
		resolved.includeExtensions = defaults.IncludeExtensions
	}
	if len(resolved.excludeExtensions) == 0 {
		resolved.excludeExtensions = defaults.ExcludeExtensions
	}
	if len(resolved.includeFiles) == 0 {
		resolved.includeFiles = defaults.IncludeFiles
	}
	if len(resolved.excludeFiles) == 0 {
		resolved.excludeFiles = defaults.ExcludeFiles
	}
	if len(resolved.sortCriteria) == 0 {
		resolved.sortCriteria = defaults.Sort
	}
	if !reverseChanged && defaults.Reverse != nil {
		resolved.reverse = *defaults.Reverse
	}
	if resolved.outputPath == "" {
		resolved.outputPath = defaults.Output
	}
	if !copyChanged && defaults.Clipboard != nil {
		resolved.copyToClipboard = *defaults.Clipboard
	}
	return resolved
}

// buildStructureFilter constructs a filter from the resolved options,
// returning nil when no rule is configured so the renderer skips filtering
// entirely.
func buildStructureFilter(resolved treeOptions) render.EntryFilter {
	if len(resolved.includeExtensions) == 0 && len(resolved.excludeExtensions) == 0 &&
		len(resolved.includeFiles) == 0 && len(resolved.excludeFiles) == 0 {
		return nil
	}
	structureFilter := filter.NewStructureFilter()
	structureFilter.AddIncludedExtensions(resolved.includeExtensions)
	structureFilter.AddExcludedExtensions(resolved.excludeExtensions)
	structureFilter.AddIncludedFiles(resolved.includeFiles)
	structureFilter.AddExcludedFiles(resolved.excludeFiles)
	return structureFilter
}
