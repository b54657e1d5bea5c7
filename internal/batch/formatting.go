package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// formatResults renders the batch report in the requested format.
func formatResults(results []FileResult, format string) (string, error) {
	switch format {
	case "json":
		return formatJSON(results)
	case "csv":
		return formatCSV(results)
	default: // text
		return formatText(results)
	}
}

func formatJSON(results []FileResult) (string, error) {
	type entry struct {
		File    string      `json:"file"`
		Barcode interface{} `json:"barcode,omitempty"`
		Error   string      `json:"error,omitempty"`
	}
	report := struct {
		Files []entry `json:"files"`
	}{Files: make([]entry, len(results))}

	for i, r := range results {
		e := entry{File: r.Path}
		if r.Err != nil {
			e.Error = r.Err.Error()
		} else {
			e.Barcode = r.Result
		}
		report.Files[i] = e
	}

	bts, err := json.MarshalIndent(report, "", "  ")
	return string(bts), err
}

func formatCSV(results []FileResult) (string, error) {
	rows := [][]string{{"file", "format", "text", "num_bits", "points", "error"}}

	for _, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{r.Path, "", "", "0", "0", r.Err.Error()})
			continue
		}
		rows = append(rows, []string{
			r.Path,
			r.Result.Format,
			r.Result.Text,
			strconv.Itoa(r.Result.NumBits),
			strconv.Itoa(len(r.Result.Points)),
			"",
		})
	}

	var output strings.Builder
	writer := csv.NewWriter(&output)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return output.String(), writer.Error()
}

func formatText(results []FileResult) (string, error) {
	var output strings.Builder
	for i, r := range results {
		if i > 0 {
			output.WriteString("\n")
		}
		output.WriteString(fmt.Sprintf("# %s\n", r.Path))
		if r.Err != nil {
			output.WriteString(fmt.Sprintf("error: %v\n", r.Err))
			continue
		}
		output.WriteString(fmt.Sprintf("%s: %s\n", r.Result.Format, r.Result.Text))
	}
	return output.String(), nil
}
