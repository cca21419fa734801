// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/pflag"

	"github.com/ava-labs/feemeter/usage"
)

const (
	appName   = "feemeter"
	envPrefix = "FEEMETER"

	defaultMetricsNamespace = "feemeter"
)

// BuildFlagSet returns the complete set of flags for feemeter
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", "Specifies a JSON config file")

	// Usage
	fs.Uint64(LegacyReceiptStorageSecondsKey, usage.DefaultLegacyReceiptStorageSeconds, "Seconds a receipt is retained, charged to every transaction")

	// Logging
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "plain", "The log format. Should be one of {plain, json}")

	// Metrics
	fs.String(MetricsNamespaceKey, defaultMetricsNamespace, "Namespace of the exported metrics")
	return fs
}
