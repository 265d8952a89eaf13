package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const allHashesSheet = "All_Hashes"
const crackedSheet = "Cracked_Passwords"

// ExportToXLSX saves a two-sheet workbook: every parsed dump entry, and the
// subset of accounts with a recovered password
func ExportToXLSX(entries []Entry, credentials []Credential, filename string) error {
	workbook := excelize.NewFile()
	workbook.SetSheetName(workbook.GetSheetName(0), allHashesSheet)
	workbook.NewSheet(crackedSheet)

	if err := writeAllHashes(workbook, entries); err != nil {
		return err
	}
	if err := writeCredentials(workbook, credentials); err != nil {
		return err
	}

	return workbook.SaveAs(filename)
}

func writeAllHashes(workbook *excelize.File, entries []Entry) error {
	if len(entries) == 0 {
		return writeRow(workbook, allHashesSheet, 1, []interface{}{"No hash data found"})
	}

	header := []interface{}{"Domain", "Username", "UID", "LM Hash", "NT Hash", "Full Entry"}
	if err := writeRow(workbook, allHashesSheet, 1, header); err != nil {
		return err
	}
	for index, entry := range entries {
		row := []interface{}{entry.Domain, entry.Username, entry.UID, entry.LMHash, entry.NTHash, entry.FullEntry}
		if err := writeRow(workbook, allHashesSheet, index+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCredentials(workbook *excelize.File, credentials []Credential) error {
	if len(credentials) == 0 {
		return writeRow(workbook, crackedSheet, 1, []interface{}{"No cracked passwords found"})
	}

	if err := writeRow(workbook, crackedSheet, 1, []interface{}{"Domain", "Username", "Password"}); err != nil {
		return err
	}
	for index, credential := range credentials {
		row := []interface{}{credential.Domain, credential.Username, credential.Password}
		if err := writeRow(workbook, crackedSheet, index+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(workbook *excelize.File, sheet string, row int, values []interface{}) error {
	return workbook.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values)
}
