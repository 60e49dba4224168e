// Package matcheck checks the output of matrix-multiplication programs.
//
// A benchmark or HPC code writes A, B and its product C as text files; the
// validate command reloads them, recomputes A·B with an independent kernel and
// reports whether every element agrees within 1e-3.
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   : Dense row-major matrix, reference and BLAS (gonum) products, comparison kernels
//	matfile/  : text matrix reader/writer (whitespace-separated rows, '#' comments, Octave header)
//	validate/ : the load → multiply → compare → report pipeline
//	generate/ : deterministic drand48-tiled workloads (matmul, matvec) for end-to-end runs
//
// and two commands:
//
//	cmd/validate : validate <path_to_A> <path_to_B> <path_to_C>
//	cmd/matgen   : matgen matmul|matvec <dim> <ts> [--dir DIR] [--prefix NAME]
//
// Quick example:
//
//	$ matgen matmul 64 16 --dir /tmp/run
//	$ validate /tmp/run/matmul_A.mat /tmp/run/matmul_B.mat /tmp/run/matmul_C.mat
//	A = (64, 64)
//	B = (64, 64)
//	C = (64, 64)
//	Ok
//	Max difference: <largest |A·B - C| element>
package matcheck
