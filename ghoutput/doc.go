// Package ghoutput writes step outputs in the GITHUB_OUTPUT file format.
//
// Each output is one "key=value" line. Values are escaped so that a
// newline inside a value cannot start a new output and smuggle extra
// variables into the workflow.
//
//	w, err := ghoutput.OpenFile(os.Getenv("GITHUB_OUTPUT"))
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	w.Set("build_mode", "manual")
package ghoutput
