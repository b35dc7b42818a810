// SPDX-License-Identifier: ice License 1.0

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/swan-kyc/kyc"
	"github.com/ice-blockchain/wintr/log"
)

type (
	arguments struct {
		email       string
		idImagePath string
		selfiePath  string
		baseURL     string
		check       bool
	}
)

func main() {
	args := parseArguments()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := run(ctx, args, os.Stdout); err != nil {
		log.Error(errors.Wrap(err, "swan-kyc failed"))
		cancel()
		os.Exit(1) //nolint:gocritic // Context is cancelled above.
	}
}

func parseArguments() *arguments {
	args := new(arguments)
	flag.StringVar(&args.email, "email", "", "Email of the user being verified")
	flag.StringVar(&args.idImagePath, "id-image", "", "Path to the ID document image")
	flag.StringVar(&args.selfiePath, "selfie", "", "Path to the selfie image")
	flag.StringVar(&args.baseURL, "base-url", "", "KYC service base URL, overrides application.yaml")
	flag.BoolVar(&args.check, "check", false, "Check that the KYC service is healthy before submitting")
	flag.Parse()

	return args
}

func run(ctx context.Context, args *arguments, out io.Writer) error {
	var client kyc.Client
	if args.baseURL != "" {
		client = kyc.NewClient(args.baseURL)
	} else {
		client = kyc.New()
	}
	if args.check {
		if err := client.Available(ctx); err != nil {
			return errors.Wrap(err, "kyc service is not available")
		}
	}
	req, closeFiles, err := kyc.NewKYCRequestFromFiles(args.email, args.idImagePath, args.selfiePath)
	if err != nil {
		return errors.Wrapf(err, "failed to prepare kyc request for email:%v", args.email)
	}
	resp := client.SubmitKYC(ctx, req)
	if cErr := closeFiles(); cErr != nil {
		log.Error(errors.Wrap(cErr, "failed to release kyc images"))
	}
	encoded, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to encode %#v", resp)
	}
	if _, err = fmt.Fprintln(out, string(encoded)); err != nil {
		return errors.Wrap(err, "failed to print kyc response")
	}
	if !resp.Success {
		return errors.Errorf("kyc submission was not successful: %v", resp.Message)
	}

	return nil
}
