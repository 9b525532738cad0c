// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/klauspost/compress/gzip"
	"github.com/urfave/cli"
)

var (
	errNoInput       = errors.New("no input file provided")
	errMissingHeader = errors.New("missing header")
)

// setupLogger sets up the global bridge logger.
func setupLogger(ctx *cli.Context) (level log.Level, err error) {
	level = log.Info
	if lvl := ctx.String(LogFlag.Name); lvl != "" {
		level, err = parseLogLevelString(lvl)
		if err != nil {
			return 0, err
		}
	}

	log.Patch(
		log.SetWriter(os.Stdout),
		log.SetFormat(log.FormatConsole),
		log.SetLevel(level),
	)

	return level, nil
}

func isGzip(fp string) bool {
	return strings.HasSuffix(fp, ".gz")
}

// openInput opens the file for reading, decompressing it if it is gzipped.
func openInput(fp string) (io.ReadCloser, error) {
	if fp == "" {
		return nil, errNoInput
	}

	file, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return nil, err
	}
	if !isGzip(fp) {
		return file, nil
	}

	reader, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("opening gzip reader of %s: %w", fp, err)
	}
	return &gzipReadCloser{Reader: reader, file: file}, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (r *gzipReadCloser) Close() error {
	err := r.Reader.Close()
	if closeErr := r.file.Close(); err == nil {
		err = closeErr
	}
	return err
}

// writeOutput writes the JSON encoding of value to the file, compressed
// if the file name ends with .gz.
func writeOutput(fp string, value interface{}) (err error) {
	file, err := os.Create(filepath.Clean(fp))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	var writer io.Writer = file
	if isGzip(fp) {
		gzipWriter := gzip.NewWriter(file)
		defer func() {
			if closeErr := gzipWriter.Close(); err == nil {
				err = closeErr
			}
		}()
		writer = gzipWriter
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

// decodeInput decodes the JSON content of the file into value.
func decodeInput(fp string, value interface{}) (err error) {
	reader, err := openInput(fp)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := reader.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = json.NewDecoder(reader).Decode(value); err != nil {
		return fmt.Errorf("decoding %s: %w", fp, err)
	}
	return nil
}

// readHeaders reads a JSON list of headers with their receipts.
func readHeaders(fp string) (headers []types.HeaderWithReceipts, err error) {
	if err = decodeInput(fp, &headers); err != nil {
		return nil, err
	}
	for i, header := range headers {
		if header.Header == nil {
			return nil, fmt.Errorf("%w: header %d of %s", errMissingHeader, i, fp)
		}
	}
	return headers, nil
}

// readHeader reads a single header with its receipts.
func readHeader(fp string) (*types.HeaderWithReceipts, error) {
	header := new(types.HeaderWithReceipts)
	if err := decodeInput(fp, header); err != nil {
		return nil, err
	}
	if header.Header == nil {
		return nil, fmt.Errorf("%w: %s", errMissingHeader, fp)
	}
	return header, nil
}
