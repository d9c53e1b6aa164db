// Package render produces the scanner configuration document from a
// resolved repo config and workflow inputs.
//
// Templates are looked up by name in the override directories first and
// then in the templates embedded in the binary:
//
//	r := render.New(".scanplan/templates")
//	doc, err := r.Render(render.DefaultTemplate, render.Data{
//	    Repo:     "consensys/linea",
//	    Language: "java-kotlin",
//	})
package render
