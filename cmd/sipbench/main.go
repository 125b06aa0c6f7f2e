// Command sipbench measures sipgo throughput against other 64-bit
// hash functions on the local machine.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	cpuid "github.com/klauspost/cpuid/v2"
	"github.com/minio/highwayhash"
	"github.com/zeebo/xxh3"

	"github.com/hupe1980/sipgo"
	"github.com/hupe1980/sipgo/internal/simd"
)

const (
	benchK0 = 0x0706050403020100
	benchK1 = 0x0f0e0d0c0b0a0908
)

type candidate struct {
	name string
	hash func(p []byte) uint64
}

func candidates() ([]candidate, error) {
	var hhKey [32]byte
	for i := range hhKey {
		hhKey[i] = byte(i)
	}
	hh, err := highwayhash.New64(hhKey[:])
	if err != nil {
		return nil, fmt.Errorf("highwayhash: %w", err)
	}

	return []candidate{
		{"sipgo-2-4", func(p []byte) uint64 {
			h := sipgo.New24(benchK0, benchK1)
			h.Write(p)
			return h.Sum64()
		}},
		{"sipgo-1-3", func(p []byte) uint64 {
			h := sipgo.New13(benchK0, benchK1)
			h.Write(p)
			return h.Sum64()
		}},
		{"sipgo-raw-2-4", func(p []byte) uint64 {
			h := sipgo.NewRaw(benchK0, benchK1, 2, 4)
			h.UpdateBytes(p)
			return h.Sum64()
		}},
		{"dchest-siphash-2-4", func(p []byte) uint64 {
			return siphash.Hash(benchK0, benchK1, p)
		}},
		{"xxhash64", xxhash.Sum64},
		{"xxh3", xxh3.Hash},
		{"highwayhash64", func(p []byte) uint64 {
			hh.Reset()
			hh.Write(p)
			return hh.Sum64()
		}},
	}, nil
}

func main() {
	size := flag.Int("size", 1<<20, "buffer size in bytes")
	reps := flag.Int("reps", 100, "repetitions per hash")
	jsonOut := flag.Bool("json", false, "emit JSON logs")
	flag.Parse()

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if *jsonOut {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	logger := slog.New(handler)

	// On ARM64 some features require explicit detection.
	if runtime.GOARCH == "arm64" {
		cpuid.DetectARM()
	}

	logger.Info("cpu",
		"brand", cpuid.CPU.BrandName,
		"goarch", runtime.GOARCH,
		"sse2", cpuid.CPU.Supports(cpuid.SSE2),
		"avx2", cpuid.CPU.Supports(cpuid.AVX2),
		"active_isa", simd.ActiveISA().String(),
		"isa_overridden", simd.IsOverridden(),
	)

	buf := make([]byte, *size)
	rand.New(rand.NewSource(1)).Read(buf)

	cands, err := candidates()
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}

	for _, c := range cands {
		digest := c.hash(buf) // warm-up, and keeps the work observable

		start := time.Now()
		for i := 0; i < *reps; i++ {
			digest ^= c.hash(buf)
		}
		elapsed := time.Since(start)

		mbps := float64(*size) * float64(*reps) / elapsed.Seconds() / (1 << 20)
		logger.Info("result",
			"algo", c.name,
			"digest", fmt.Sprintf("%#016x", digest),
			"mb_per_s", fmt.Sprintf("%.1f", mbps),
			"elapsed", elapsed.Round(time.Millisecond).String(),
		)
	}
}
