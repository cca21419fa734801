// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey                  = "config-file"
	LegacyReceiptStorageSecondsKey = "legacy-receipt-storage-seconds"
	LogLevelKey                    = "log-level"
	LogFormatKey                   = "log-format"
	MetricsNamespaceKey            = "metrics-namespace"
)
