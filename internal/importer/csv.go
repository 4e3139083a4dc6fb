package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const csvRowsPerSlide = 10

// CSVImporter handles CSV files. The first row is the header; data rows
// are grouped into markdown tables of csvRowsPerSlide rows.
type CSVImporter struct{}

func (p *CSVImporter) Import(r io.Reader, filename string) (*Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	doc := &Document{Title: baseTitle(filename), Markdown: true}
	if len(records) == 0 {
		return doc, nil
	}

	headers := records[0]
	rows := records[1:]
	for i := 0; i < len(rows); i += csvRowsPerSlide {
		end := min(i+csvRowsPerSlide, len(rows))
		doc.Sections = append(doc.Sections, &Section{
			Title: fmt.Sprintf("Rows %d-%d", i+2, end+1), // 1-indexed, skip header
			Text:  markdownTable(headers, rows[i:end]),
		})
	}
	return doc, nil
}

func markdownTable(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for j := range headers {
			cell := ""
			if j < len(cells) {
				cell = cells[j]
			}
			b.WriteString(" " + tableCell(cell) + " |")
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows {
		writeRow(row)
	}
	return strings.TrimRight(b.String(), "\n")
}

func tableCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
