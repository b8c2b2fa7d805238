package excel

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"posprep/domain/workbook"
	"posprep/internal/errors"
	"posprep/ports"
)

// DocumentReader opens .xlsx containers into the raw Document model. No
// header interpretation happens here; every sheet is read row-by-row as
// plain text so the header resolver can scan it unassisted.
type DocumentReader struct{}

// NewDocumentReader creates a reader for in-memory workbook bytes.
func NewDocumentReader() *DocumentReader {
	return &DocumentReader{}
}

var _ ports.DocumentSource = (*DocumentReader)(nil)

// Open parses the container. A container that cannot be opened at all is
// the one fatal validation condition and surfaces as DOCUMENT_UNREADABLE.
func (r *DocumentReader) Open(data []byte) (*workbook.Document, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.DocumentUnreadable(err)
	}
	defer f.Close()

	doc := &workbook.Document{}
	for _, name := range f.GetSheetList() {
		visible, err := f.GetSheetVisible(name)
		if err != nil {
			return nil, errors.DocumentUnreadable(err)
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errors.DocumentUnreadable(err)
		}
		doc.Sheets = append(doc.Sheets, workbook.Sheet{
			Name:   name,
			Hidden: !visible,
			Cells:  rows,
		})
	}
	return doc, nil
}
