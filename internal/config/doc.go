// Package config provides configuration loading, merging, and validation
// facilities for the queue client and the queue server simulator.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the queue client and
// [GetServerConfig] for the simulator.
package config
