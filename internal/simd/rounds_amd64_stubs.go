//go:build !noasm && amd64

package simd

import "unsafe"

//go:noescape
func sipRoundsSSE2(s *State, n uint64)

//go:noescape
func sipCompressSSE2(s *State, p unsafe.Pointer, n uint64, c uint64)

//go:noescape
func sipRoundsAVX2(s *State, n uint64)

//go:noescape
func sipCompressAVX2(s *State, p unsafe.Pointer, n uint64, c uint64)
