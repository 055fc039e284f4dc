// Package leaderboard fetches and parses the leaderboard spreadsheet.
package leaderboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet's rows as displayed text.
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook is a parsed spreadsheet.
type Workbook struct {
	Sheets []Sheet
}

// Players decodes the first sheet that yields any players.
func (w *Workbook) Players() []Player {
	for _, s := range w.Sheets {
		if players := DecodePlayers(s.Rows); len(players) > 0 {
			return players
		}
	}
	return nil
}

// RowCount returns the number of rows across all sheets.
func (w *Workbook) RowCount() int {
	n := 0
	for _, s := range w.Sheets {
		n += len(s.Rows)
	}
	return n
}

// LoadError reports a failure to fetch or parse the leaderboard.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("leaderboard %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader fetches the spreadsheet from a file path or an http(s) URL.
type Loader struct {
	Source string
	Client *http.Client
	Log    logrus.FieldLogger
}

// Load fetches and parses the spreadsheet. Every parsed row is logged at
// debug level. Errors are returned as *LoadError.
func (l *Loader) Load(ctx context.Context) (*Workbook, error) {
	log := l.logger().WithField("source", l.Source)

	data, err := l.fetch(ctx)
	if err != nil {
		return nil, &LoadError{Source: l.Source, Err: err}
	}

	wb, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Source: l.Source, Err: err}
	}

	for _, s := range wb.Sheets {
		for i, row := range s.Rows {
			log.WithFields(logrus.Fields{"sheet": s.Name, "row": i + 1}).Debug(strings.Join(row, " | "))
		}
	}
	log.WithField("rows", wb.RowCount()).Info("leaderboard loaded")
	return wb, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if !isURL(l.Source) {
		data, err := os.ReadFile(l.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch file: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}

func (l *Loader) logger() logrus.FieldLogger {
	if l.Log != nil {
		return l.Log.WithField("component", "leaderboard")
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Parse reads an xlsx workbook and returns the rows of every sheet in
// workbook order.
func Parse(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}
