// Package wythoff enumerates the fundamental domains ("flags") of finite
// reflection groups and builds the vertex/edge skeletons of the uniform
// polytopes obtained from them by Wythoff's kaleidoscopic construction.
//
// What is in the box?
//
//	A small pipeline, each stage in its own package:
//		• matrix   – dense matrices, Cholesky, determinants & cofactors
//		• coxeter  – Coxeter matrices, mirror normals, presets & cache names
//		• flag     – the flag type: reflect, compare, ring to a point
//		• orbit    – enumerate every flag by repeated reflection (explicit-stack DFS)
//		• polytope – merge flag points into vertices, adjacent flags into edges
//		• cache    – persist flag sets as text files or in badger
//
// The command in cmd/wythoff wires these together behind a cobra CLI with
// viper configuration and slog logging.
//
// Quick ASCII example:
//
//	(o)-4-o---o      B3, first node ringed
//
// is the cube: 48 flags, 8 vertices, 12 edges.
//
//	go run ./cmd/wythoff generate --preset B3 --rings 1,0,0
package wythoff
