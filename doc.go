// Package vecgen generates synthetic datasets of random vectors for
// nearest-neighbor search experiments (LSH, hypercube projection).
//
// A dataset is a text file with one record per line: a zero-based integer id
// followed by the coordinates, every field terminated by a tab:
//
//	0\t41.67\t7.5\t93.0\t\n
//	1\t12.25\t0.11\t64.8\t\n
//
// Coordinates are drawn independently and uniformly from [0.00, 100.00].
//
// # Quick Start
//
//	gen, _ := vecgen.New(vecgen.WithSeed(42))
//	res, err := gen.Generate(ctx, vecgen.Config{Output: "input_small", Dimension: 128, Records: 1000})
//	// writes datasets/vectors/input_small
//
// # Reading Datasets Back
//
// Inspect reads a file the way the search tools do and verifies the id
// sequence and that every record has the dimension of the first one:
//
//	stats, err := gen.Inspect(ctx, "datasets/vectors/input_small")
//	fmt.Println(stats.Records, stats.Dimension, stats.Min, stats.Max)
//
// # Optional Outputs
//
// WithCompression wraps the file in gzip, zstd or lz4. WithManifest writes a
// YAML sidecar ("<name>.manifest.yaml") recording seed, bounds and the CRC32C
// of the uncompressed record text.
package vecgen
