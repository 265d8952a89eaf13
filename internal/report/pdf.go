package report

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// ExportToPDF saves the recovered credentials as a printable table document
func ExportToPDF(credentials []Credential, filename string) error {
	document := pdf.NewMaroto(consts.Portrait, consts.A4)
	document.SetPageMargins(10, 15, 10)

	document.Row(20, func() {
		document.Col(12, func() {
			document.Text("Recovered credentials", props.Text{
				Size:  16,
				Style: consts.Bold,
				Align: consts.Center,
			})
		})
	})
	document.Row(10, func() {
		document.Col(12, func() {
			document.Text(fmt.Sprintf("%d accounts with recovered passwords", len(credentials)), props.Text{
				Size:  10,
				Align: consts.Center,
			})
		})
	})

	contents := [][]string{}
	for _, credential := range credentials {
		contents = append(contents, []string{credential.Domain, credential.Username, credential.Password})
	}
	document.TableList([]string{"Domain", "Username", "Password"}, contents, props.TableList{
		HeaderProp: props.TableListContent{
			Size:  10,
			Style: consts.Bold,
		},
		ContentProp: props.TableListContent{
			Size: 9,
		},
		Align: consts.Left,
		Line:  true,
	})

	return document.OutputFileAndClose(filename)
}
