package report

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "posprep/domain/report"
)

func sampleReport() domain.Report {
	return domain.Report{
		RunID:       "run-1",
		GeneratedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Score:       75,
		Band:        domain.BandNeedsAttention,
		Tables: []domain.TableReport{
			{Table: "stock_items", Sheet: "Stock Items", Present: true, RowCount: 3},
		},
		Issues: []domain.Issue{
			{
				Severity:       domain.SeverityCritical,
				Kind:           domain.KindGhostReference,
				Table:          "recipes",
				Sheet:          "Recipes",
				SourceRow:      3,
				Field:          "Ingredient Name",
				Value:          "Tomatoe",
				Message:        `Ingredient Name "Tomatoe" does not match any stock or manufactured item`,
				SuggestedValue: "Tomato",
			},
			{
				Severity: domain.SeverityCritical,
				Kind:     domain.KindEmptyTable,
				Table:    "products",
				Sheet:    "Products",
				Message:  "Products contains no usable rows",
			},
		},
	}
}

func TestCSVRenderer(t *testing.T) {
	out, err := CSVRenderer{}.Render(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Severity", "Sheet", "Row", "Column", "Issue", "Suggested Fix"}, records[0])
	assert.Equal(t, "critical", records[1][0])
	assert.Equal(t, "Recipes", records[1][1])
	assert.Equal(t, "3", records[1][2])
	assert.Equal(t, "Tomato", records[1][5])
	assert.Equal(t, "", records[2][2], "table-level issues have no row")
}

func TestMarkdownRenderer(t *testing.T) {
	out, err := MarkdownRenderer{}.Render(sampleReport())
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "Score: 75/100")
	assert.Contains(t, md, "needs_attention")
	assert.Contains(t, md, "Tomatoe")
	assert.Contains(t, md, "| stock_items | Stock Items | true | 3 |")
}

func TestHTMLRenderer(t *testing.T) {
	out, err := HTMLRenderer{}.Render(sampleReport())
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "Tomatoe")
}
