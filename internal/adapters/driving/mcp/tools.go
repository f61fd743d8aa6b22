package mcp

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wordfind-cli/internal/core/domain"
	"github.com/custodia-labs/wordfind-cli/internal/core/ports/driving"
)

// ScanInput is the input schema for the scan tool.
type ScanInput struct {
	Folder        string `json:"folder" jsonschema:"the folder containing the documents to scan"`
	Query         string `json:"query" jsonschema:"the keyword or phrase to search for"`
	Restrict      bool   `json:"restrict,omitempty" jsonschema:"count direct matches only, excluding synonyms"`
	Recursive     bool   `json:"recursive,omitempty" jsonschema:"descend into subdirectories"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	Workers       int    `json:"workers,omitempty" jsonschema:"worker pool size (default half the CPUs)"`
}

// ScanOutput is the output schema for the scan tool.
type ScanOutput struct {
	Documents []ScanDocumentOutput `json:"documents"`
	Total     int                  `json:"total"`
	Failures  int                  `json:"failures"`
}

// ScanDocumentOutput is one document's result summary.
type ScanDocumentOutput struct {
	Path    string   `json:"path"`
	Label   string   `json:"label"`
	Count   int      `json:"count"`
	Direct  int      `json:"direct"`
	Synonym int      `json:"synonym"`
	Terms   []string `json:"terms,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// SynonymsInput is the input schema for the synonyms tool.
type SynonymsInput struct {
	Word string `json:"word" jsonschema:"the word to look up"`
}

// SynonymsOutput is the output schema for the synonyms tool.
type SynonymsOutput struct {
	Synonyms []string `json:"synonyms"`
	Known    bool     `json:"known"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scan",
		Description: "Scan a folder of PDF and Word documents for a keyword or phrase",
	}, s.handleScan)

	if s.ports.Lexicon != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "synonyms",
			Description: "Look up the WordNet synonyms a single-word query expands to",
		}, s.handleSynonyms)
	}
}

// handleScan handles the scan tool invocation.
func (s *Server) handleScan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ScanInput,
) (*mcp.CallToolResult, ScanOutput, error) {
	opts := driving.ScanOptions{
		Recursive:     input.Recursive,
		CaseSensitive: input.CaseSensitive,
		Workers:       input.Workers,
	}

	report, err := s.ports.Scan.Scan(ctx, input.Folder, input.Query, opts, nil)
	if err != nil {
		return nil, ScanOutput{}, err
	}

	output := ScanOutput{
		Total:    report.TotalMatches(input.Restrict),
		Failures: report.Failures(),
	}

	paths := make([]string, 0, len(report.Results))
	for path := range report.Results {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		result := report.Results[path]
		doc := ScanDocumentOutput{
			Path:    path,
			Label:   result.Label(),
			Direct:  result.CountDirect(),
			Synonym: result.CountSynonym(),
		}
		if input.Restrict {
			doc.Count = result.CountRestricted()
		} else {
			doc.Count = result.Count()
		}
		for _, term := range result.Terms {
			if input.Restrict && term.Kind == domain.MatchSynonym {
				continue
			}
			doc.Terms = append(doc.Terms, term.Term)
		}
		if result.Failed() {
			doc.Error = result.Err.Error()
		}
		output.Documents = append(output.Documents, doc)
	}

	return nil, output, nil
}

// handleSynonyms handles the synonyms tool invocation.
func (s *Server) handleSynonyms(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SynonymsInput,
) (*mcp.CallToolResult, SynonymsOutput, error) {
	return nil, SynonymsOutput{
		Synonyms: s.ports.Lexicon.Synonyms(input.Word),
		Known:    s.ports.Lexicon.Known(input.Word),
	}, nil
}
