package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// HeartColumns is the column order of the heart-disease dataset
var HeartColumns = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalach", "exang", "oldpeak", "slope", "ca", "thal", "target",
}

// HeartCategoricalColumns are the columns with fewer than 10 distinct values
var HeartCategoricalColumns = []string{
	"sex", "cp", "fbs", "restecg", "exang", "slope", "ca", "thal", "target",
}

// HeartGeneratorConfig configures the heart-disease sample generator
type HeartGeneratorConfig struct {
	Rows int   `json:"rows"`
	Seed int64 `json:"seed"`
	// NullCells blanks out the given number of cells per column.
	NullCells map[string]int `json:"null_cells"`
}

// DefaultHeartConfig matches the shape of the public heart-disease dataset
func DefaultHeartConfig() HeartGeneratorConfig {
	return HeartGeneratorConfig{
		Rows: 303,
		Seed: 42,
	}
}

// HeartDataGenerator produces a deterministic heart-disease-like table
type HeartDataGenerator struct {
	config HeartGeneratorConfig
	rng    *rand.Rand
}

// NewHeartDataGenerator creates a new generator
func NewHeartDataGenerator(config HeartGeneratorConfig) *HeartDataGenerator {
	return &HeartDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Records returns the header followed by one record per patient. Repeated
// calls return the same table.
func (g *HeartDataGenerator) Records() [][]string {
	g.rng = rand.New(rand.NewSource(g.config.Seed))
	records := make([][]string, 0, g.config.Rows+1)
	records = append(records, append([]string(nil), HeartColumns...))
	for i := 0; i < g.config.Rows; i++ {
		records = append(records, g.patient())
	}
	g.blankCells(records)
	return records
}

func (g *HeartDataGenerator) patient() []string {
	target := g.rng.Intn(2)

	// Chest pain type and max heart rate lean with the label, as in the real data.
	cp := g.rng.Intn(4)
	if target == 1 && cp == 0 && g.rng.Float64() < 0.6 {
		cp = 1 + g.rng.Intn(3)
	}
	thalach := 100 + g.rng.Intn(80)
	if target == 1 {
		thalach += 15
	}
	oldpeak := float64(g.rng.Intn(63)) / 10
	if target == 1 {
		oldpeak /= 2
	}

	row := []int{
		29 + g.rng.Intn(49),   // age
		g.rng.Intn(2),         // sex
		cp,                    // cp
		94 + g.rng.Intn(107),  // trestbps
		126 + g.rng.Intn(439), // chol
		boolInt(g.rng.Float64() < 0.15),
		g.rng.Intn(3), // restecg
		thalach,
		boolInt(target == 0 && g.rng.Float64() < 0.55),
	}

	out := make([]string, 0, len(HeartColumns))
	for _, v := range row {
		out = append(out, strconv.Itoa(v))
	}
	out = append(out, strconv.FormatFloat(oldpeak, 'f', 1, 64))
	out = append(out,
		strconv.Itoa(g.rng.Intn(3)), // slope
		strconv.Itoa(g.rng.Intn(5)), // ca
		strconv.Itoa(g.rng.Intn(4)), // thal
		strconv.Itoa(target),
	)
	return out
}

func (g *HeartDataGenerator) blankCells(records [][]string) {
	for col, n := range g.config.NullCells {
		idx := indexOf(HeartColumns, col)
		if idx < 0 || n <= 0 {
			continue
		}
		if n > g.config.Rows {
			n = g.config.Rows
		}
		for _, r := range g.rng.Perm(g.config.Rows)[:n] {
			records[r+1][idx] = ""
		}
	}
}

// WriteCSV writes the generated records to path
func (g *HeartDataGenerator) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(g.Records()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteXLSX writes the generated records to Sheet1 of a new workbook
func (g *HeartDataGenerator) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, rec := range g.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(rec))
		for j, v := range rec {
			row[j] = v
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return f.SaveAs(path)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
