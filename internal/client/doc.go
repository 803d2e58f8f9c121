// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the interactive queue client: identity, HTTP
// transport, queue state machine and terminal widget.
package client
