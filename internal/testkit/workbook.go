package testkit

import (
	"github.com/xuri/excelize/v2"

	"posprep/domain/workbook"
)

// Sheet builds a visible sheet fixture from literal rows.
func Sheet(name string, rows ...[]string) workbook.Sheet {
	return workbook.Sheet{Name: name, Cells: rows}
}

// HiddenSheet builds a hidden sheet fixture from literal rows.
func HiddenSheet(name string, rows ...[]string) workbook.Sheet {
	return workbook.Sheet{Name: name, Hidden: true, Cells: rows}
}

// Doc assembles sheets into a document fixture.
func Doc(sheets ...workbook.Sheet) *workbook.Document {
	return &workbook.Document{Sheets: sheets}
}

// OnboardingWorkbook is the canonical messy onboarding fixture: template
// instruction rows, a worked example block with its own header copy,
// placeholder rows, currency-formatted prices, short codes, a tagged
// ingredient reference, one typo reference and one nonsense reference.
func OnboardingWorkbook() *workbook.Document {
	return Doc(
		Sheet("Stock Items",
			[]string{"Welcome! List every raw ingredient you buy in."},
			[]string{},
			[]string{"Stock Item Name", "Unit Cost", "PLU Code"},
			[]string{"EXAMPLE", "1.00", "0001"},
			[]string{"Tomato", "3.50", "1001"},
			[]string{"Cheddar Cheese", "R 42.00", "12"},
			[]string{"Flour", "8.20", "1003"},
		),
		Sheet("Manufactured Items",
			[]string{"Manufactured Item Name", "Batch Cost"},
			[]string{"Pizza Base", "14.00"},
			[]string{"Tomato Sauce", "6.50"},
		),
		Sheet("Products",
			[]string{"How to fill in this sheet"},
			[]string{},
			[]string{"The block below is a worked example."},
			[]string{},
			[]string{"Product Name", "Selling Price", "PLU Code", "Menu Path", "Menu", "Category"},
			[]string{"EXAMPLE", "25.00", "0002", "Food / Mains", "", ""},
			[]string{},
			[]string{"Fill in your own products below."},
			[]string{"Product Name", "Selling Price", "PLU Code", "Menu Path", "Menu", "Category"},
			[]string{"Margherita Pizza", "R 89.90", "2001", "Food > Pizzas", "", ""},
			[]string{"Espresso", "22.00", "45", "Drinks - Coffee", "", ""},
		),
		Sheet("Recipes",
			[]string{"Ingredient Name", "Product Name", "Quantity"},
			[]string{"Tomato Sauce (Manufactured)", "Margherita Pizza", "0.2"},
			[]string{"Tomatoe", "Margherita Pizza", "2"},
			[]string{"Xyzabc", "Espresso", "1"},
		),
		Sheet("Employees",
			[]string{"Employee Name", "Pay Rate", "Employee Code"},
			[]string{"Thandi Nkosi", "185.50", "0042"},
			[]string{"Sam Lee", "160", "7"},
		),
	)
}

// PristineWorkbook contains no findings at all: every table present,
// every field well-formed, every reference resolvable.
func PristineWorkbook() *workbook.Document {
	return Doc(
		Sheet("Stock Items",
			[]string{"Stock Item Name", "Unit Cost", "PLU Code"},
			[]string{"Tomato", "3.50", "1001"},
		),
		Sheet("Manufactured Items",
			[]string{"Manufactured Item Name", "Batch Cost"},
			[]string{"Pizza Base", "14.00"},
		),
		Sheet("Products",
			[]string{"Product Name", "Selling Price", "PLU Code", "Menu Path", "Menu", "Category"},
			[]string{"Margherita Pizza", "89.90", "2001", "", "Food", "Pizzas"},
		),
		Sheet("Recipes",
			[]string{"Ingredient Name", "Product Name", "Quantity"},
			[]string{"Tomato", "Margherita Pizza", "0.2"},
		),
		Sheet("Employees",
			[]string{"Employee Name", "Pay Rate", "Employee Code"},
			[]string{"Thandi Nkosi", "185.50", "0042"},
		),
	)
}

// BuildXLSX serializes a document fixture into real .xlsx bytes so
// adapter and API tests exercise the same file format clients upload.
func BuildXLSX(doc *workbook.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range doc.Sheets {
		if i == 0 {
			// Rename the default sheet instead of leaving it dangling.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, err
			}
		}
		for r, row := range sheet.Cells {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellStr(sheet.Name, cell, value); err != nil {
					return nil, err
				}
			}
		}
		if sheet.Hidden {
			if err := f.SetSheetVisible(sheet.Name, false); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
