package simplex

import (
	"fmt"
	"math/big"
)

// faceNames label face dimensions 0 through 5. Higher dimensions are
// labeled "k-elements".
var faceNames = []string{"vertices", "edges", "faces", "cells", "hypercells", "5-faces"}

// VoidName labels the single sentinel entry of the (-1)-simplex.
const VoidName = "void"

// Face is the number of faces of one dimension.
type Face struct {
	Dim   int      `json:"dim" yaml:"dim"`
	Name  string   `json:"name" yaml:"name"`
	Count *big.Int `json:"count" yaml:"count"`
}

// FaceTable lists face counts in ascending dimension.
type FaceTable []Face

// FaceName returns the label of k-dimensional faces.
func FaceName(k int) string {
	if k >= 0 && k < len(faceNames) {
		return faceNames[k]
	}
	return fmt.Sprintf("%d-elements", k)
}

// Faces returns the face counts of the dim-simplex: C(dim+1, k+1) faces
// of dimension k for k = 0..dim. For dim <= -1 it returns the sentinel
// table {void: 1}, which is not a real face count.
func Faces(dim int) FaceTable {
	if dim < 0 {
		return FaceTable{{Dim: -1, Name: VoidName, Count: big.NewInt(1)}}
	}
	row := PascalRow(dim + 1)
	table := make(FaceTable, dim+1)
	for k := 0; k <= dim; k++ {
		table[k] = Face{Dim: k, Name: FaceName(k), Count: row[k+1]}
	}
	return table
}

// Get returns the count labeled name.
func (t FaceTable) Get(name string) (*big.Int, bool) {
	for _, f := range t {
		if f.Name == name {
			return new(big.Int).Set(f.Count), true
		}
	}
	return nil, false
}

// Total returns the sum of all counts: 2^(dim+1) - 1 for dim >= 0.
func (t FaceTable) Total() *big.Int {
	s := new(big.Int)
	for _, f := range t {
		s.Add(s, f.Count)
	}
	return s
}

// Map returns the table as name -> count.
func (t FaceTable) Map() map[string]*big.Int {
	m := make(map[string]*big.Int, len(t))
	for _, f := range t {
		m[f.Name] = new(big.Int).Set(f.Count)
	}
	return m
}
