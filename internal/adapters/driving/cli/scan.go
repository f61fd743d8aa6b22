package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
)

var (
	scanRestrict      bool
	scanRecursive     bool
	scanCaseSensitive bool
	scanWorkers       int
	scanJSON          bool
)

// Direct matches render red, synonym matches magenta.
var (
	directStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	synonymStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

var scanCmd = &cobra.Command{
	Use:   "scan [folder] [query]",
	Short: "Scan a folder of documents for a keyword or phrase",
	Long: `Scans every PDF and Word document in the folder for the query.

Single-word queries are expanded with WordNet synonyms; matched synonyms
are reported alongside direct matches. Phrases match as contiguous word
sequences and are never expanded.

Occurrence counts stream in as each document completes, followed by the
matching lines with occurrences highlighted (direct in red, synonyms in
magenta).`,
	Args: cobra.ExactArgs(2),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanRestrict, "restrict", false, "count and highlight direct matches only")
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false, "descend into subdirectories")
	scanCmd.Flags().BoolVar(&scanCaseSensitive, "case-sensitive", false, "match case exactly")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 0, "worker pool size (0 = half the CPUs)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	folder, query := args[0], args[1]

	if scanService == nil {
		return errors.New("scan service not configured")
	}

	opts := scanOptions(cmd)
	restrict := scanRestrict
	if !cmd.Flags().Changed("restrict") && configStore != nil {
		restrict = configStore.GetBool(driven.KeyRestrict)
	}

	warnUnknownWord(cmd, query)

	var onResult driving.ResultHandler
	if !scanJSON {
		onResult = func(result domain.DocumentResult) {
			printResultLine(cmd, result, restrict)
		}
	}

	report, err := scanService.Scan(cmd.Context(), folder, query, opts, onResult)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanJSON {
		return outputReportJSON(cmd, report, restrict)
	}

	outputExcerpts(cmd, report, restrict)
	outputSummary(cmd, report, restrict)
	return nil
}

// scanOptions merges command-line flags with configured defaults.
func scanOptions(cmd *cobra.Command) driving.ScanOptions {
	opts := driving.ScanOptions{
		Recursive:     scanRecursive,
		CaseSensitive: scanCaseSensitive,
		Workers:       scanWorkers,
	}

	if configStore == nil {
		return opts
	}
	if !cmd.Flags().Changed("recursive") {
		opts.Recursive = configStore.GetBool(driven.KeyRecursive)
	}
	if !cmd.Flags().Changed("case-sensitive") {
		opts.CaseSensitive = configStore.GetBool(driven.KeyCaseSensitive)
	}
	if !cmd.Flags().Changed("workers") {
		opts.Workers = configStore.GetInt(driven.KeyWorkers)
	}
	return opts
}

// warnUnknownWord flags likely misspelt single-word queries.
func warnUnknownWord(cmd *cobra.Command, query string) {
	if lexiconService == nil || !lexiconService.Available() {
		return
	}
	q, err := domain.NewQuery(query, false)
	if err != nil || q.IsPhrase() {
		return
	}
	if !lexiconService.Known(q.Text) {
		cmd.PrintErrf("warning: %q is not in the lexicon, check the spelling\n", q.Text)
	}
}

func printResultLine(cmd *cobra.Command, result domain.DocumentResult, restrict bool) {
	if result.Failed() {
		cmd.Printf("  %s: failed (%v)\n", result.Label(), result.Err)
		return
	}

	count := result.Count()
	if restrict {
		count = result.CountRestricted()
	}
	cmd.Printf("  %s: %d\n", result.Label(), count)
}

// outputExcerpts prints each document's matching lines with occurrences
// highlighted. Colour is dropped when stdout is not a terminal.
func outputExcerpts(cmd *cobra.Command, report *domain.ScanReport, restrict bool) {
	colour := term.IsTerminal(int(os.Stdout.Fd()))

	for _, result := range sortedResults(report) {
		if result.Failed() {
			continue
		}
		excerpts := domain.Excerpts(result.Text, result.Matches, restrict)
		if len(excerpts) == 0 {
			continue
		}

		cmd.Println()
		cmd.Printf("%s:\n", result.Label())
		for _, excerpt := range excerpts {
			cmd.Printf("  %s\n", renderSegments(excerpt.Segments, colour))
		}
	}
}

func outputSummary(cmd *cobra.Command, report *domain.ScanReport, restrict bool) {
	cmd.Println()
	cmd.Printf("%d documents scanned, %d failures, %d occurrences\n",
		report.Documents(), report.Failures(), report.TotalMatches(restrict))

	if terms := matchedSynonyms(report); !restrict && len(terms) > 0 {
		cmd.Printf("synonyms matched: %v\n", terms)
	}
}

// renderSegments joins highlight segments, colouring matches when enabled.
func renderSegments(segments []domain.Segment, colour bool) string {
	out := ""
	for _, segment := range segments {
		switch {
		case !colour || segment.Kind == domain.SegmentPlain:
			out += segment.Text
		case segment.Kind == domain.SegmentDirect:
			out += directStyle.Render(segment.Text)
		default:
			out += synonymStyle.Render(segment.Text)
		}
	}
	return out
}

// matchedSynonyms collects the distinct synonym terms that occurred.
func matchedSynonyms(report *domain.ScanReport) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, result := range report.Results {
		for _, term := range result.Terms {
			if term.Kind != domain.MatchSynonym {
				continue
			}
			if _, ok := seen[term.Term]; ok {
				continue
			}
			seen[term.Term] = struct{}{}
			terms = append(terms, term.Term)
		}
	}
	sort.Strings(terms)
	return terms
}

func sortedResults(report *domain.ScanReport) []domain.DocumentResult {
	results := make([]domain.DocumentResult, 0, len(report.Results))
	for _, result := range report.Results {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Ref.Path < results[j].Ref.Path
	})
	return results
}

// reportJSON is the JSON shape of a scan report.
type reportJSON struct {
	Query     string    `json:"query"`
	Restrict  bool      `json:"restrict"`
	Documents []docJSON `json:"documents"`
	Total     int       `json:"total"`
	Failures  int       `json:"failures"`
}

type docJSON struct {
	Path    string   `json:"path"`
	Label   string   `json:"label"`
	Count   int      `json:"count"`
	Direct  int      `json:"direct"`
	Synonym int      `json:"synonym"`
	Terms   []string `json:"terms,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func outputReportJSON(cmd *cobra.Command, report *domain.ScanReport, restrict bool) error {
	out := reportJSON{
		Query:    report.Query.Text,
		Restrict: restrict,
		Total:    report.TotalMatches(restrict),
		Failures: report.Failures(),
	}

	for _, result := range sortedResults(report) {
		doc := docJSON{
			Path:    result.Ref.Path,
			Label:   result.Label(),
			Direct:  result.CountDirect(),
			Synonym: result.CountSynonym(),
		}
		if restrict {
			doc.Count = result.CountRestricted()
		} else {
			doc.Count = result.Count()
		}
		for _, term := range result.Terms {
			if restrict && term.Kind == domain.MatchSynonym {
				continue
			}
			doc.Terms = append(doc.Terms, term.Term)
		}
		if result.Failed() {
			doc.Error = result.Err.Error()
		}
		out.Documents = append(out.Documents, doc)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
