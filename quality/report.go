package quality

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WritePlain writes the errors and their arguments in a plain,
// human-readable form as a single line:
//
//	name:	relative = <v> (at <arg>), absolute = <v> (at <arg>), root-mean-square = <v>
func (s *Stats[F, In]) WritePlain(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "%s:\trelative = %v (at %v), absolute = %v (at %v), root-mean-square = %v\n",
		name, s.MaxRel(), s.MaxRelArg(), s.MaxAbs(), s.MaxAbsArg(), s.RMS())
	return err
}

// csvHeader is the header row matching the records written by WriteCSV.
var csvHeader = []string{
	"function",
	"maximum relative",
	"maximum relative argument",
	"maximum absolute",
	"maximum absolute argument",
	"root-mean-square",
}

// CSVHeader writes the header line for the CSV report whose rows are
// produced by Stats.WriteCSV.
func CSVHeader(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes the errors and their arguments as one CSV record. Use
// CSVHeader to write the header first.
func (s *Stats[F, In]) WriteCSV(w io.Writer, name string) error {
	cw := csv.NewWriter(w)
	record := []string{
		name,
		fmt.Sprint(s.MaxRel()),
		fmt.Sprint(s.MaxRelArg()),
		fmt.Sprint(s.MaxAbs()),
		fmt.Sprint(s.MaxAbsArg()),
		fmt.Sprint(s.RMS()),
	}
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
