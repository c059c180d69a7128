// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive vault shell.
//
// It reads one command per line, drives the vault engine and prints the
// results. Passwords are read without echo, and secrets are revealed only
// on explicit request.
package client
