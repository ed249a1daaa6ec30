// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Dolgov

// Package client implements the headless client application runtime.
//
// It wires the server adapter, the session lifecycle, and background
// synchronization into a single process lifecycle. Interactive front ends
// (desktop, mobile bridges) embed the same service layer directly and do not
// go through this package.
package client
