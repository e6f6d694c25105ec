// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, and the background workers
// (wallet session loop and balance refresher) into a single process
// lifecycle.
package client
