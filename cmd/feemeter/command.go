// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/feemeter/config"
	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/meter"
)

const stdinPath = "-"

type estimateFunc func(m *meter.Meter, request []byte) (fees.FeeData, error)

type output struct {
	FeeData   fees.FeeData `json:"feeData"`
	Canonical string       `json:"canonical"`
}

func newCommand() *cobra.Command {
	fs := config.BuildFlagSet()
	cmd := &cobra.Command{
		Use:          "feemeter",
		Short:        "Estimates the resource usage fee components of transactions and queries",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().AddFlagSet(fs)
	cmd.AddCommand(
		newEstimateCommand(fs, "txn", "Estimate the fee components of a transaction", estimateTxn),
		newEstimateCommand(fs, "query", "Estimate the fee components of a query", estimateQuery),
	)
	return cmd
}

func newEstimateCommand(fs *pflag.FlagSet, use string, short string, estimate estimateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file|->",
		Short: short,
		Long:  short + ". The request is read as JSON or YAML from the file, or from stdin when the file is -.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(fs)
			if err != nil {
				return err
			}
			cfg, err := config.GetConfig(v)
			if err != nil {
				return err
			}

			log := cfg.Logging.New(cmd.ErrOrStderr())
			defer log.Stop()

			m, err := meter.New(
				meter.Config{
					Properties:       cfg.Properties,
					MetricsNamespace: cfg.MetricsNamespace,
					TxnCalculators:   meter.TxnCalculators(),
					QueryCalculators: meter.QueryCalculators(),
				},
				log,
				prometheus.NewRegistry(),
			)
			if err != nil {
				return err
			}

			request, err := readRequest(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			log.Debug("read request",
				zap.String("path", args[0]),
				zap.Int("size", len(request)),
			)

			feeData, err := estimate(m, request)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(output{
				FeeData:   feeData,
				Canonical: "0x" + hex.EncodeToString(feeData.Bytes()),
			}, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

func readRequest(stdin io.Reader, path string) ([]byte, error) {
	if path == stdinPath {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
