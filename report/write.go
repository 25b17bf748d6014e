// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/picfuzzy/distance"
)

const panicPrecisionInvalid = "report: precision must be non-negative"

// header returns the column titles in report order.
func header() []string {
	cols := []string{"Pair"}
	for _, m := range distance.Measures() {
		cols = append(cols, m.String())
	}

	return cols
}

// record renders one row with fixed decimals.
func record(r Row, precision int) []string {
	rec := []string{r.Pair}
	for _, m := range distance.Measures() {
		rec = append(rec, decimal.NewFromFloat(r.Value(m)).StringFixed(int32(precision)))
	}

	return rec
}

// WriteTable writes rows as a space-aligned text table with a header line.
// Panics if precision is negative.
func WriteTable(w io.Writer, rows []Row, precision int) error {
	if precision < 0 {
		panic(panicPrecisionInvalid)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(header(), "\t")); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintln(tw, strings.Join(record(r, precision), "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteCSV writes rows as CSV with a header record.
// Panics if precision is negative.
func WriteCSV(w io.Writer, rows []Row, precision int) error {
	if precision < 0 {
		panic(panicPrecisionInvalid)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header()); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r, precision)); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
