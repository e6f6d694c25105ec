// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources. Earlier sources take
// precedence, later ones only fill fields that are still empty:
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first, without overriding variables already set)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults for the Base network and the Properties DEX
//     contracts
//
// The main entry points are [GetStructuredConfig] for the merged raw
// configuration and [GetClientConfig] for the validated client view.
package config
