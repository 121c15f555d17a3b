package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/fmtstr/check"
	"github.com/gnolang/fmtstr/internal/diagnostic"
	"github.com/gnolang/fmtstr/internal/types"
)

var (
	checkTargets    []string
	checkJSONOutput bool
	checkOutPath    string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check format templates embedded in Go source files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		engine, err := check.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize check engine", zap.Error(err))
		}
		for _, target := range checkTargets {
			engine.AddTarget(target)
		}

		issues, err := check.ProcessFiles(context.Background(), logger, engine, args)
		if err != nil {
			logger.Error("Error processing files", zap.Error(err))
			os.Exit(1)
		}

		printIssues(issues)

		if len(issues) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkTargets, "target", nil, "Additional qualified call names to check (e.g. log.Infof)")
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output issues in JSON format")
	checkCmd.Flags().StringVarP(&checkOutPath, "output", "o", "", "Output path (when using JSON)")
}

func printIssues(issues []types.Issue) {
	if checkJSONOutput {
		printIssuesJSON(issues)
		return
	}

	issuesByFile := make(map[string][]types.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	var sortedFiles []string
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		source, err := diagnostic.ReadSource(filename)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
			continue
		}
		fmt.Print(diagnostic.Format(issuesByFile[filename], source))
	}
}

func printIssuesJSON(issues []types.Issue) {
	d, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		logger.Error("Error marshaling issues to JSON", zap.Error(err))
		os.Exit(1)
	}

	if checkOutPath == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(checkOutPath, d, 0o644); err != nil {
		logger.Error("Error writing JSON output", zap.String("path", checkOutPath), zap.Error(err))
		os.Exit(1)
	}
}
