// SPDX-License-Identifier: MIT

// Package dataset loads labeled numeric samples from CSV and splits them into
// reproducible train/test partitions.
//
// One row is one sample. One column (the last by default) holds the class
// label as text; every other column must parse as float64. Split shuffles
// with a seeded source, so the same seed always yields the same partition.
package dataset
