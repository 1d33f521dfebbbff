// Package generic provides the pure Go reference kernels: the scalar
// variant of every kernel and the manual-variant fallback for CPUs (or
// builds) without a usable vector instruction set.
package generic
