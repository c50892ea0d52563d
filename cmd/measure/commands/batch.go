package commands

import (
	"bufio"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/teranos/measure/display"
	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/measures"
	"github.com/teranos/measure/numeric"
)

func newBatchCmd(st *state) *cobra.Command {
	var dimension string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Convert one value per line read from standard input",
		Long: `Batch reads lines of the form

  <value> <unit> [target]

from standard input and converts each one. Fields follow shell quoting, so
units with spaces are written quoted. Blank lines and lines starting with
# are skipped.

Example:
  printf '1 mi km\n10 "mile per hour" kph\n' | measure batch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.withCatalog(
				func(c *measures.Catalog[numeric.Decimal]) error {
					return runBatch(cmd, st, c, dimension)
				},
				func(c *measures.Catalog[numeric.Float]) error {
					return runBatch(cmd, st, c, dimension)
				},
			)
		},
	}
	cmd.Flags().StringVarP(&dimension, "dimension", "d", "", "Dimension every line belongs to (default: guessed per line)")
	return cmd
}

type batchResults []result

func (b batchResults) String() string {
	lines := make([]string, len(b))
	for i, r := range b {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

func runBatch[N numeric.Number[N]](cmd *cobra.Command, st *state, c *measures.Catalog[N], dimension string) error {
	results, err := batch(cmd.InOrStdin(), c, dimension, st.cfg.Output.Precision)
	if err != nil {
		return err
	}
	format := display.OutputFormat(cmd, st.cfg.Output.Format)
	if format == display.FormatTOML {
		// TOML documents need a table at the top level.
		return display.Output(cmd.OutOrStdout(), map[string]batchResults{"result": results}, format)
	}
	if format == display.FormatText && len(results) == 0 {
		return nil
	}
	return st.print(cmd, results)
}

// batch converts every line of r.
func batch[N numeric.Number[N]](r io.Reader, c *measures.Catalog[N], dimension string, precision int) (batchResults, error) {
	results := batchResults{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields, err := shellquote.Split(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Newf("line %d: want <value> <unit> [target], got %d fields", line, len(fields))
		}
		to := ""
		if len(fields) == 3 {
			to = fields[2]
		}

		res, err := convert(c, dimension, fields[0], fields[1], to, precision)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		results = append(results, res)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return results, nil
}
