package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/docstore/docstore/internal/document"
	"github.com/docstore/docstore/internal/document/seed"
	"github.com/docstore/docstore/internal/document/service"
	"github.com/spf13/cobra"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Load a seed file and search or look up documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		seedPath, _ := cmd.Flags().GetString("seed")
		asJSON, _ := cmd.Flags().GetBool("json")

		svc := service.NewMemoryService()
		if _, err := seed.LoadInto(svc, seedPath); err != nil {
			return err
		}

		var docs []*document.Document
		if id, _ := cmd.Flags().GetString("id"); id != "" {
			d, err := svc.FindByID(id)
			if err != nil {
				return fmt.Errorf("document %s: %w", id, err)
			}
			docs = []*document.Document{d}
		} else {
			req, err := searchRequestFromFlags(cmd)
			if err != nil {
				return err
			}
			docs, err = svc.Search(req)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(docs)
		}
		fmt.Fprintln(out, renderDocumentTable(docs))
		return nil
	},
}

// searchRequestFromFlags returns nil when no criterion flag was given.
func searchRequestFromFlags(cmd *cobra.Command) (*document.SearchRequest, error) {
	req := &document.SearchRequest{}
	req.TitlePrefixes, _ = cmd.Flags().GetStringArray("title-prefix")
	req.ContainsContents, _ = cmd.Flags().GetStringArray("contains")
	req.AuthorIDs, _ = cmd.Flags().GetStringArray("author")

	for _, b := range []struct {
		flag string
		dst  **time.Time
	}{{"from", &req.CreatedFrom}, {"to", &req.CreatedTo}} {
		v, _ := cmd.Flags().GetString(b.flag)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", b.flag, err)
		}
		*b.dst = &t
	}
	if req.IsEmpty() {
		return nil, nil
	}
	return req, nil
}

func renderDocumentTable(docs []*document.Document) string {
	if len(docs) == 0 {
		return "No documents found."
	}
	rows := make([][]string, len(docs))
	for i, d := range docs {
		author := ""
		if d.Author != nil {
			author = d.Author.ID
		}
		rows[i] = []string{d.ID, d.TitleOrEmpty(), author, d.Created.Format(time.RFC3339)}
	}
	t := table.New().
		Headers("ID", "Title", "Author", "Created").
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}

func init() {
	queryCmd.Flags().String("seed", "", "YAML seed file with a documents list")
	_ = queryCmd.MarkFlagRequired("seed")
	queryCmd.Flags().String("id", "", "look up a single document by id")
	queryCmd.Flags().StringArray("title-prefix", nil, "title prefix (repeatable, any may match)")
	queryCmd.Flags().StringArray("contains", nil, "content substring (repeatable, any may match)")
	queryCmd.Flags().StringArray("author", nil, "author id (repeatable)")
	queryCmd.Flags().String("from", "", "created at or after (RFC 3339)")
	queryCmd.Flags().String("to", "", "created at or before (RFC 3339)")
	queryCmd.Flags().Bool("json", false, "print JSON instead of a table")
	rootCmd.AddCommand(queryCmd)
}
