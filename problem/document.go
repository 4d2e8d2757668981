package problem

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspbb/geo"
	"github.com/katalvlaran/tspbb/matrix"
	"github.com/katalvlaran/tspbb/tsp"
)

// City is the serialized form of geo.City.
type City struct {
	X         float64 `yaml:"x" json:"x"`
	Y         float64 `yaml:"y" json:"y"`
	Elevation float64 `yaml:"elevation,omitempty" json:"elevation,omitempty"`
}

// Document is one TSP instance.
type Document struct {
	Name    string     `yaml:"name,omitempty" json:"name,omitempty"`
	Start   int        `yaml:"start" json:"start"`
	Mode    string     `yaml:"mode,omitempty" json:"mode,omitempty"`
	Seed    int64      `yaml:"seed,omitempty" json:"seed,omitempty"`
	Cities  []City     `yaml:"cities,omitempty" json:"cities,omitempty"`
	Matrix  [][]Weight `yaml:"matrix,omitempty" json:"matrix,omitempty"`
	Removed [][2]int   `yaml:"removed,omitempty" json:"removed,omitempty"`
}

// Size returns the number of cities described by d.
func (d *Document) Size() int {
	if len(d.Matrix) > 0 {
		return len(d.Matrix)
	}

	return len(d.Cities)
}

// Validate checks the shape of d without building a model.
func (d *Document) Validate() error {
	switch {
	case len(d.Cities) == 0 && len(d.Matrix) == 0:
		return ErrEmpty
	case len(d.Cities) > 0 && len(d.Matrix) > 0:
		return ErrAmbiguous
	}
	n := d.Size()
	for i, row := range d.Matrix {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrRagged, i, len(row), n)
		}
	}
	for _, e := range d.Removed {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n || e[0] == e[1] {
			return fmt.Errorf("%w: %d→%d with %d cities", ErrBadEdge, e[0], e[1], n)
		}
	}
	if d.Start < 0 || d.Start >= n {
		return fmt.Errorf("problem: start %d with %d cities: %w", d.Start, n, tsp.ErrStartOutOfRange)
	}

	return nil
}

// Model builds the cost model described by d: a *geo.Model for city documents,
// a tsp.DenseModel for matrix documents.
func (d *Document) Model() (tsp.CostModel, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if len(d.Matrix) > 0 {
		return d.denseModel()
	}

	mode, err := geo.ParseMode(d.Mode)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	cities := make([]geo.City, len(d.Cities))
	for i, c := range d.Cities {
		cities[i] = geo.City{ID: i, Point: orb.Point{c.X, c.Y}, Elevation: c.Elevation}
	}
	removed := make([]geo.Edge, len(d.Removed))
	for i, e := range d.Removed {
		removed[i] = geo.Edge{From: e[0], To: e[1]}
	}
	gm, err := geo.NewModel(cities, mode, removed)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}

	return gm, nil
}

// denseModel loads the weight table into a matrix.Dense, marks the removed
// edges and copies the result into a tsp.DenseModel.
func (d *Document) denseModel() (tsp.DenseModel, error) {
	rows := make([][]float64, len(d.Matrix))
	for i, row := range d.Matrix {
		rows[i] = make([]float64, len(row))
		for j, w := range row {
			rows[i][j] = float64(w)
		}
	}
	dense, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	for _, e := range d.Removed {
		if err = dense.Set(e[0], e[1], math.Inf(1)); err != nil {
			return nil, fmt.Errorf("problem: removed edge: %w", err)
		}
	}
	dm, err := tsp.FromMatrix(dense)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}

	return dm, nil
}

// FromGeo serializes a generated model.
func FromGeo(m *geo.Model, name string) Document {
	doc := Document{Name: name, Mode: m.Mode().String()}
	for _, c := range m.Cities() {
		doc.Cities = append(doc.Cities, City{X: c.X(), Y: c.Y(), Elevation: c.Elevation})
	}
	for _, e := range m.Removed() {
		doc.Removed = append(doc.Removed, [2]int{e.From, e.To})
	}

	return doc
}

// FromMatrix serializes a dense cost matrix.
func FromMatrix(m tsp.DenseModel, name string) Document {
	doc := Document{Name: name, Matrix: make([][]Weight, len(m))}
	for i, row := range m {
		doc.Matrix[i] = make([]Weight, len(row))
		for j, v := range row {
			doc.Matrix[i][j] = Weight(v)
		}
	}

	return doc
}

// Decode reads one YAML document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("problem: decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Load reads a YAML problem file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("problem: encode: %w", err)
	}

	return enc.Close()
}

// Save writes doc to path, creating or truncating the file.
func Save(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("problem: %w", err)
	}
	if err = Encode(f, doc); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
