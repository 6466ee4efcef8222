// cmd/tools/catalog-check/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"career-risk-workers/internal/assessment"
	"career-risk-workers/internal/catalog"
	"career-risk-workers/internal/common/validation"
	"career-risk-workers/internal/models"
	"career-risk-workers/pkg/registry"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run writes command output to out and catalog warnings to errOut.
func run(args []string, out, errOut io.Writer) error {
	statsCmd := flag.NewFlagSet("stats", flag.ContinueOnError)
	statsPath := statsCmd.String("catalog", "", "Catalog file or directory (empty uses the embedded catalog)")

	occCmd := flag.NewFlagSet("occupation", flag.ContinueOnError)
	occPath := occCmd.String("catalog", "", "Catalog file or directory (empty uses the embedded catalog)")
	occID := occCmd.String("id", "", "Occupation ID (e.g., finance-accounting)")

	scoreCmd := flag.NewFlagSet("score", flag.ContinueOnError)
	scorePath := scoreCmd.String("catalog", "", "Catalog file or directory (empty uses the embedded catalog)")
	scoreOcc := scoreCmd.String("occupation", "", "Occupation ID")
	scoreAnswers := scoreCmd.String("answers", "", "JSON file holding [{\"questionId\":..,\"answerId\":..}]")
	scoreReport := scoreCmd.String("report", "", "Also build a report: basic or enhanced")

	regCmd := flag.NewFlagSet("registry", flag.ContinueOnError)
	regPath := regCmd.String("path", "configs/activity-registry.json", "Path to registry file")

	if len(args) < 1 {
		help(out)
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "stats":
		if err := statsCmd.Parse(args[1:]); err != nil {
			return err
		}
		c, err := catalog.LoadPath(*statsPath)
		if err != nil {
			return err
		}
		stats := c.Stats()
		for _, id := range stats.OccupationsWithoutKit {
			fmt.Fprintf(errOut, "warning: occupation %q has no tool kit, reports fall back to %q\n", id, catalog.DefaultToolKitID)
		}
		return printJSON(out, stats)

	case "occupation":
		if err := occCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *occID == "" {
			return fmt.Errorf("occupation requires -id")
		}
		c, err := catalog.LoadPath(*occPath)
		if err != nil {
			return err
		}
		occ, ok := c.Occupation(*occID)
		if !ok {
			return fmt.Errorf("occupation %q not in catalog %s", *occID, c.Version())
		}
		kit, _ := c.ToolKit(occ.ID)
		return printJSON(out, map[string]interface{}{
			"occupation": occ,
			"toolKit":    kit,
		})

	case "score":
		if err := scoreCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *scoreOcc == "" {
			return fmt.Errorf("score requires -occupation")
		}
		c, err := catalog.LoadPath(*scorePath)
		if err != nil {
			return err
		}
		answers, err := readAnswers(*scoreAnswers)
		if err != nil {
			return err
		}
		return score(out, assessment.NewEngine(c), *scoreOcc, answers, *scoreReport)

	case "registry":
		if err := regCmd.Parse(args[1:]); err != nil {
			return err
		}
		return checkRegistry(out, *regPath)

	case "help":
		help(out)
		return nil

	default:
		help(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func score(out io.Writer, engine *assessment.Engine, occupationID string, answers []models.QuizAnswer, report string) error {
	result, err := engine.Score(answers, occupationID)
	if err != nil {
		return err
	}

	switch report {
	case "":
		return printJSON(out, result)
	case "basic":
		return printJSON(out, engine.BuildReport(result))
	case "enhanced":
		return printJSON(out, engine.BuildEnhancedReport(result, answers))
	default:
		return fmt.Errorf("unknown report kind %q", report)
	}
}

func readAnswers(path string) ([]models.QuizAnswer, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	var answers []models.QuizAnswer
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	return answers, nil
}

// checkRegistry loads the registry and compiles every input schema.
func checkRegistry(out io.Writer, path string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if len(reg.Activities) == 0 {
		return fmt.Errorf("registry contains no activities")
	}

	validator, err := validation.NewSchemaValidator(reg)
	if err != nil {
		return err
	}
	for _, taskType := range reg.TaskTypes() {
		state := "no input schema"
		if validator.HasSchema(taskType) {
			state = "input schema ok"
		}
		fmt.Fprintf(out, "%-28s %s\n", taskType, state)
	}
	fmt.Fprintln(out, "Registry validation passed.")
	return nil
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func help(out io.Writer) {
	fmt.Fprintln(out, "Usage: catalog-check <command> [arguments]")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  stats       Print table sizes and the catalog version")
	fmt.Fprintln(out, "  occupation  Print one occupation profile and its tool kit")
	fmt.Fprintln(out, "  score       Score a set of answers offline")
	fmt.Fprintln(out, "  registry    Validate the activity registry and its schemas")
	fmt.Fprintln(out, "  help        Show this help message")
}
