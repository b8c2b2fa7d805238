package excel

import (
	"bytes"
	"strconv"

	"github.com/xuri/excelize/v2"

	"posprep/internal/errors"
	"posprep/ports"
)

// FixWriter produces a corrected copy of a workbook with accepted
// suggestions applied. The original bytes are never touched; the copy is
// byte-identical outside the targeted cells.
type FixWriter struct{}

// NewFixWriter creates a writer for applying fix targets.
func NewFixWriter() *FixWriter {
	return &FixWriter{}
}

var _ ports.DocumentWriter = (*FixWriter)(nil)

// ApplyFixes reopens the original container and writes each fix target
// into its (sheet, row, column) cell. Values that parse as numbers are
// written numerically so the corrected workbook keeps numeric cells
// numeric.
func (w *FixWriter) ApplyFixes(original []byte, fixes []ports.FixTarget) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(original))
	if err != nil {
		return nil, errors.DocumentUnreadable(err)
	}
	defer f.Close()

	for _, fix := range fixes {
		cell, err := excelize.CoordinatesToCellName(fix.Column+1, fix.SourceRow)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid fix target %s row %d col %d", fix.Sheet, fix.SourceRow, fix.Column)
		}
		// Zero-padded codes parse as numbers but writing them
		// numerically would strip the padding the fix exists to add.
		if num, perr := strconv.ParseFloat(fix.Value, 64); perr == nil && !hasLeadingZero(fix.Value) {
			err = f.SetCellValue(fix.Sheet, cell, num)
		} else {
			err = f.SetCellStr(fix.Sheet, cell, fix.Value)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to write fix into %s!%s", fix.Sheet, cell)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize corrected workbook")
	}
	return buf.Bytes(), nil
}

func hasLeadingZero(s string) bool {
	return len(s) > 1 && s[0] == '0' && s[1] != '.'
}
