// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Terminal is the line source of the shell.
type Terminal interface {
	// ReadLine returns the next input line without its line ending. It
	// returns io.EOF when input is exhausted.
	ReadLine() (string, error)
	// ReadPassword prints prompt and reads a line without echo.
	ReadPassword(prompt string) (string, error)
}
