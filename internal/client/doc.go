// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 traduz authors

// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows, the card and setup services, and the
// provider adapters into a single process lifecycle: verify the local card
// store, run the provider setup flow when needed, then hand control to the
// main loop.
package client
