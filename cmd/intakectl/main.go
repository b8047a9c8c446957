package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"promissa/internal/coverage"
	"promissa/internal/finance"
	"promissa/internal/sequence"
	id "promissa/pkg/domain"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "intakectl",
		Short: "Operational tooling for the promissa questionnaire",
		Long: `intakectl inspects and exercises the questionnaire definitions offline:
the screen catalog, the five-year coverage calculator, and the financial
decision tree. It never talks to a running server.`,
		Version: version,
	}

	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(coverageCmd())
	rootCmd.AddCommand(financeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the screen catalog",
	}
	cmd.AddCommand(catalogLintCmd())
	cmd.AddCommand(catalogScreensCmd())
	return cmd
}

func catalogLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [file]",
		Short: "Validate a catalog file (or the embedded one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var catalog *sequence.Catalog
			var err error
			if len(args) == 0 {
				catalog, err = sequence.Load()
			} else {
				var data []byte
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read catalog: %w", err)
				}
				catalog, err = sequence.Parse(data)
			}
			if err != nil {
				return fmt.Errorf("catalog invalid: %w", err)
			}

			screens := 0
			fields := 0
			for _, sec := range catalog.Sections {
				for _, sub := range sec.Subsections {
					if sub.OnePerField {
						screens += len(sub.Fields)
					} else {
						screens++
					}
					fields += len(sub.Fields)
				}
			}
			fmt.Printf("catalog valid: %d sections, %d screens, %d fields\n",
				len(catalog.Sections), screens, fields)
			return nil
		},
	}
}

func catalogScreensCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "screens",
		Short: "List the screen sequence for a role with no answers given",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedRole, err := id.ParseRole(role)
			if err != nil {
				return err
			}
			catalog, err := sequence.Load()
			if err != nil {
				return err
			}

			screens := sequence.New(catalog).Screens(parsedRole, emptySnapshot{})
			for i, scr := range screens {
				fmt.Printf("%2d  %-45s %s\n", i+1, scr.Path, scr.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "sponsor", "role to sequence for (sponsor or beneficiary)")
	return cmd
}

type emptySnapshot struct{}

func (emptySnapshot) Lookup(string) (any, bool) { return nil, false }

// coverageInput is the YAML shape accepted by `intakectl coverage check`.
type coverageInput struct {
	Entries []struct {
		Label   string `yaml:"label"`
		Start   string `yaml:"start"`
		End     string `yaml:"end"`
		Current bool   `yaml:"current"`
	} `yaml:"entries"`
}

func coverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Run the five-year gap calculator",
	}
	cmd.AddCommand(coverageCheckCmd())
	return cmd
}

func coverageCheckCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report the coverage gaps in a YAML timeline",
		Long: `Reads a YAML timeline and reports the coverage gaps the questionnaire
would flag. Input shape:

  entries:
    - label: Springfield apartment
      start: 2021-03-01
      end: 2023-08-15
    - label: Boston condo
      start: 2023-08-16
      current: true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read timeline: %w", err)
			}

			var input coverageInput
			if err := yaml.Unmarshal(data, &input); err != nil {
				return fmt.Errorf("invalid timeline: %w", err)
			}

			entries := make([]coverage.Entry, 0, len(input.Entries))
			for i, e := range input.Entries {
				start, err := time.Parse("2006-01-02", e.Start)
				if err != nil {
					return fmt.Errorf("entry %d: invalid start date %q", i, e.Start)
				}
				var end time.Time
				if e.End != "" {
					end, err = time.Parse("2006-01-02", e.End)
					if err != nil {
						return fmt.Errorf("entry %d: invalid end date %q", i, e.End)
					}
				}
				entries = append(entries, coverage.Entry{
					Label: e.Label, Start: start, End: end, Current: e.Current,
				})
			}

			report := coverage.Calculate(entries, time.Now().UTC())
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(report)
			}

			fmt.Printf("window: %s to %s\n",
				report.WindowStart.Format("2006-01-02"), report.WindowEnd.Format("2006-01-02"))
			fmt.Printf("coverage: %d%%\n", report.CoveragePercent)
			if report.FullyCovered() {
				fmt.Println("no gaps")
				return nil
			}
			for _, gap := range report.Gaps {
				fmt.Printf("gap: %s\n", gap.Description)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full report as JSON")
	return cmd
}

func financeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Exercise the financial decision tree",
	}
	cmd.AddCommand(financeWalkCmd())
	cmd.AddCommand(financeNodesCmd())
	return cmd
}

func financeWalkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "walk [answers...]",
		Short: "Walk the decision tree, interactively or from given answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				trail, err := finance.Walk(args)
				if err != nil {
					return err
				}
				for _, node := range trail {
					fmt.Println(node)
				}
				last := trail[len(trail)-1]
				if endpoint, ok := finance.Terminal(last); ok {
					fmt.Printf("\n%s\n", endpoint.Guidance)
				}
				return nil
			}

			reader := bufio.NewScanner(os.Stdin)
			node := finance.Start()
			for {
				if endpoint, ok := finance.Terminal(node); ok {
					fmt.Printf("\n=> %s\n%s\n", endpoint.Strategy, endpoint.Guidance)
					return nil
				}
				question, ok := finance.Lookup(node)
				if !ok {
					return fmt.Errorf("decision tree is missing node %s", node)
				}

				fmt.Printf("\n%s\n", question.Prompt)
				for _, opt := range question.Options {
					fmt.Printf("  [%s] %s\n", opt.Answer, opt.Label)
				}
				fmt.Print("> ")
				if !reader.Scan() {
					return nil
				}
				next, err := finance.Next(node, strings.TrimSpace(reader.Text()))
				if err != nil {
					fmt.Println(err)
					continue
				}
				node = next
			}
		},
	}
}

func financeNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List every node in the decision tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions := finance.Questions()
			endpoints := finance.Endpoints()

			ids := make([]string, 0, len(questions)+len(endpoints))
			for nodeID := range questions {
				ids = append(ids, string(nodeID))
			}
			for nodeID := range endpoints {
				ids = append(ids, string(nodeID))
			}
			sort.Strings(ids)

			for _, nodeID := range ids {
				if _, ok := endpoints[finance.NodeID(nodeID)]; ok {
					fmt.Printf("%-30s endpoint\n", nodeID)
				} else {
					fmt.Printf("%-30s question\n", nodeID)
				}
			}
			return nil
		},
	}
}
