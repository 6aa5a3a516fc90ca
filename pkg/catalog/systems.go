package catalog

// systems is indexed by level. Entries are never modified after init;
// accessors hand out copies.
var systems = [...]System{
	{
		Level:           0,
		Name:            "Void (Hole)",
		Terms:           1,
		Partitions:      0,
		Universal:       0,
		Particular:      0,
		SimplexDim:      -1,
		SimplexName:     "vo-id",
		Concurrency:     -1,
		ConcurrencyName: "0-Sets (Category/Spin)",
		Matula:          []int{1},
		Properties:      []string{"Category", "Spin", "Unmarked State"},
	},
	{
		Level:           1,
		Name:            "Monad (Whole)",
		Terms:           1,
		Partitions:      1,
		Universal:       1,
		Particular:      0,
		SimplexDim:      0,
		SimplexName:     "mon-ad",
		Concurrency:     0,
		ConcurrencyName: "1-Nest (Degree/Point)",
		Matula:          []int{2},
		Properties:      []string{"Degree", "Point", "Universal Wholeness"},
	},
	{
		Level:           2,
		Name:            "Diasect (Term)",
		Terms:           2,
		Partitions:      2,
		Universal:       1,
		Particular:      1,
		SimplexDim:      1,
		SimplexName:     "dia-sect",
		Concurrency:     1,
		ConcurrencyName: "2-Vert (Metric/Line)",
		Matula:          []int{4, 3},
		Properties:      []string{"Metric", "Line", "Perceptive Wholeness"},
	},
	{
		Level:           3,
		Name:            "Triagon (Relations)",
		Terms:           4,
		Partitions:      3,
		Universal:       1,
		Particular:      2,
		SimplexDim:      2,
		SimplexName:     "tria-gon",
		Concurrency:     2,
		ConcurrencyName: "3-Edge (Triangle)",
		Matula:          []int{8, 6, 7, 5},
		Properties:      []string{"Triangle", "Four Relations", "Discretion-Means-Goal-Consequence"},
	},
	{
		Level:           4,
		Name:            "Tetrahedron (Creative Process)",
		Terms:           9,
		Partitions:      5,
		Universal:       2,
		Particular:      3,
		SimplexDim:      3,
		SimplexName:     "tetra-hedron",
		Concurrency:     3,
		ConcurrencyName: "4-Face (Tetrahedron)",
		Matula:          []int{16, 12, 9, 14, 10, 19, 13, 17, 11},
		Properties:      []string{"Tetrahedron", "Enneagram", "Primary Creative Process", "12-Stage Cycle"},
	},
	{
		Level:           5,
		Name:            "Pentachoron (Integration)",
		Terms:           20,
		Partitions:      7,
		Universal:       3,
		Particular:      4,
		SimplexDim:      4,
		SimplexName:     "penta-choron",
		Concurrency:     4,
		ConcurrencyName: "5-Cell (Convolution 2×2)",
		// 34 and 53 appear twice in the published list.
		Matula:     []int{32, 34, 18, 28, 21, 20, 15, 38, 26, 34, 22, 53, 37, 23, 43, 29, 67, 41, 53, 31},
		Properties: []string{"Pentachoron", "5-Cell", "3 Concurrent Streams", "[[D-T]-[P-O]-[S-M]]"},
	},
}
