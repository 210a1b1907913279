// Command constraints checks unavailability tokens offline, without the
// HTTP service: single tokens on the command line or a whole roster CSV.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"rehearsal-service/api"
	"rehearsal-service/internal/constraint"
	"rehearsal-service/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "constraints",
		Short:         "Validate rehearsal unavailability constraints",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newValidateCmd())

	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check TOKEN [TOKEN...]",
		Short: "Parse tokens and print what they mean",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, token := range args {
				cs, errMsg := constraint.ValidateToken(token)
				if errMsg != "" {
					bad++
					fmt.Fprintf(cmd.OutOrStdout(), "INVALID: %s\n", errMsg)
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", token)
				for _, c := range cs {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", c)
				}
			}

			if bad > 0 {
				return fmt.Errorf("%d invalid token(s)", bad)
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var (
		column   string
		idColumn string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate every constraint cell in a roster CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := readRecords(args[0], column, idColumn)
			if err != nil {
				return err
			}

			errs, stats := service.ValidateRecords(records)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rows: %d (empty: %d)\n", stats.TotalRows, stats.EmptyRows)
			fmt.Fprintf(out, "tokens: %d (valid: %d, invalid: %d)\n",
				stats.TotalTokens, stats.ValidTokens, stats.InvalidTokens)

			for _, e := range errs {
				fmt.Fprintf(out, "row %d (%s) token %d %q:\n%s\n",
					e.Row, e.EntityID, e.TokenNum, e.Token, e.Error)
			}

			if output != "" {
				if err := writeErrors(output, errs); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %d error(s) to %s\n", len(errs), output)
			}

			if stats.InvalidTokens > 0 {
				return fmt.Errorf("%d invalid token(s)", stats.InvalidTokens)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "constraints", "header of the constraints column")
	cmd.Flags().StringVar(&idColumn, "id-column", "id", "header of the identifier column")
	cmd.Flags().StringVar(&output, "output", "", "write errors to this CSV file")

	return cmd
}

// readRecords loads the CSV and maps the named columns into records. Rows
// missing the constraints column entirely are treated as empty cells.
func readRecords(path, column, idColumn string) ([]api.ConstraintRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	colIdx, idIdx := -1, -1
	for i, header := range rows[0] {
		switch header {
		case column:
			colIdx = i
		case idColumn:
			idIdx = i
		}
	}
	if colIdx < 0 {
		return nil, fmt.Errorf("%s: no %q column", path, column)
	}

	var records []api.ConstraintRecord
	for rowNum, row := range rows[1:] {
		rec := api.ConstraintRecord{ID: strconv.Itoa(rowNum + 2)}
		if idIdx >= 0 && idIdx < len(row) {
			rec.ID = row[idIdx]
		}
		if colIdx < len(row) {
			rec.Constraints = row[colIdx]
		}
		records = append(records, rec)
	}

	return records, nil
}

func writeErrors(path string, errs []api.ValidationError) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"entity_id", "row", "token_num", "token", "error"}); err != nil {
		return err
	}
	for _, e := range errs {
		record := []string{
			e.EntityID,
			strconv.Itoa(e.Row),
			strconv.Itoa(e.TokenNum),
			e.Token,
			e.Error,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}
