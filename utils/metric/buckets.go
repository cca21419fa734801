// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

var (
	// Useful bytes buckets

	BytesBuckets = []float64{
		1 << 6,
		1 << 8,
		1 << 10, // 1 KiB
		1 << 12,
		1 << 14,
		1 << 16,
		1 << 18,
		1 << 20, // 1 MiB
		// anything larger than 1 MiB will be bucketed together
	}

	// Useful byte-hour buckets

	ByteHoursBuckets = []float64{
		1,
		10,
		100,
		1_000,
		10_000,
		100_000,
		1_000_000,
		// anything larger will be bucketed together
	}
)
